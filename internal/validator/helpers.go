package validator

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

const MaxDescriptionLength = 2000

// ValidateID checks that every id is a UUID.
func ValidateID(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
			return apperrors.ErrInvalidID
		}
	}
	return nil
}

func ValidateDurationMonths(months int) error {
	if months < 1 || months > 12 {
		return apperrors.ErrInvalidDuration
	}
	return nil
}

// ValidatePrice requires a positive amount with at most two fraction digits.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() || !price.Equal(price.Round(2)) {
		return apperrors.ErrInvalidPrice
	}
	return nil
}

func ValidateDescription(desc *string) error {
	if desc != nil && len([]rune(*desc)) > MaxDescriptionLength {
		return apperrors.ErrDescriptionTooLong
	}
	return nil
}

// ParseDate parses YYYY-MM-DD as midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t.UTC(), nil
}
