package models

type MembershipStatus string
type PaymentStatus string
type PaymentMethod string

const (
	MembershipStatusScheduled MembershipStatus = "scheduled"
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusCancelled MembershipStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"

	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipStatusScheduled, MembershipStatusActive, MembershipStatusExpired, MembershipStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition can happen.
func (s MembershipStatus) Terminal() bool {
	return s == MembershipStatusCancelled
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}
