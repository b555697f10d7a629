package repositories

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

// PlanRevenue is the paid total collected for one plan.
type PlanRevenue struct {
	PlanID string
	Name   string
	Total  decimal.Decimal
}

// PaymentRepository is append-only: there is no update or delete.
type PaymentRepository interface {
	CreatePayment(db *gorm.DB, payment *models.Payment) error
	FindPaymentByID(db *gorm.DB, gymID, id string) (*models.Payment, error)
	ListByGym(db *gorm.DB, gymID string) ([]models.Payment, error)
	ListByMember(db *gorm.DB, gymID, memberID string) ([]models.Payment, error)
	ListByPlan(db *gorm.DB, gymID, planID string) ([]models.Payment, error)
	ListByMembership(db *gorm.DB, gymID, membershipID string) ([]models.Payment, error)
	SumForMembership(db *gorm.DB, gymID, membershipID string) (decimal.Decimal, error)
	SumPaidBetween(db *gorm.DB, gymID string, from, to time.Time) (decimal.Decimal, error)
	SumPaid(db *gorm.DB, gymID string) (decimal.Decimal, error)
	RevenueByPlan(db *gorm.DB, gymID string) ([]PlanRevenue, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) CreatePayment(db *gorm.DB, payment *models.Payment) error {
	return translate(db.Create(payment).Error, ErrPaymentNotFound)
}

func (r *PaymentRepositoryImpl) FindPaymentByID(db *gorm.DB, gymID, id string) (*models.Payment, error) {
	var p models.Payment
	if err := db.Where("id = ? AND gym_id = ?", id, gymID).First(&p).Error; err != nil {
		return nil, translate(err, ErrPaymentNotFound)
	}
	return &p, nil
}

func (r *PaymentRepositoryImpl) ListByGym(db *gorm.DB, gymID string) ([]models.Payment, error) {
	var out []models.Payment
	err := db.Where("gym_id = ?", gymID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepositoryImpl) ListByMember(db *gorm.DB, gymID, memberID string) ([]models.Payment, error) {
	var out []models.Payment
	err := db.Joins("JOIN memberships ON memberships.id = payments.membership_id").
		Where("payments.gym_id = ? AND memberships.member_id = ?", gymID, memberID).
		Order("payments.created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepositoryImpl) ListByPlan(db *gorm.DB, gymID, planID string) ([]models.Payment, error) {
	var out []models.Payment
	err := db.Joins("JOIN memberships ON memberships.id = payments.membership_id").
		Where("payments.gym_id = ? AND memberships.plan_id = ?", gymID, planID).
		Order("payments.created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepositoryImpl) ListByMembership(db *gorm.DB, gymID, membershipID string) ([]models.Payment, error) {
	var out []models.Payment
	err := db.Where("gym_id = ? AND membership_id = ?", gymID, membershipID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepositoryImpl) SumForMembership(db *gorm.DB, gymID, membershipID string) (decimal.Decimal, error) {
	return sumAmount(db.Model(&models.Payment{}).
		Where("gym_id = ? AND membership_id = ? AND status = ?", gymID, membershipID, models.PaymentStatusPaid))
}

// SumPaidBetween totals PAID payments created in [from, to).
func (r *PaymentRepositoryImpl) SumPaidBetween(db *gorm.DB, gymID string, from, to time.Time) (decimal.Decimal, error) {
	return sumAmount(db.Model(&models.Payment{}).
		Where("gym_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			gymID, models.PaymentStatusPaid, from, to))
}

func (r *PaymentRepositoryImpl) SumPaid(db *gorm.DB, gymID string) (decimal.Decimal, error) {
	return sumAmount(db.Model(&models.Payment{}).
		Where("gym_id = ? AND status = ?", gymID, models.PaymentStatusPaid))
}

func (r *PaymentRepositoryImpl) RevenueByPlan(db *gorm.DB, gymID string) ([]PlanRevenue, error) {
	rows, err := db.Model(&models.Payment{}).
		Select("plans.id, plans.name, COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN memberships ON memberships.id = payments.membership_id").
		Joins("JOIN plans ON plans.id = memberships.plan_id").
		Where("payments.gym_id = ? AND payments.status = ?", gymID, models.PaymentStatusPaid).
		Group("plans.id, plans.name").
		Order("plans.name ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlanRevenue
	for rows.Next() {
		var pr PlanRevenue
		if err := rows.Scan(&pr.PlanID, &pr.Name, &pr.Total); err != nil {
			return nil, err
		}
		pr.Total = pr.Total.Round(2)
		out = append(out, pr)
	}
	return out, rows.Err()
}

// sumAmount scans COALESCE(SUM(amount), 0) into a decimal. SQLite hands the
// sum back as a float, so the result is rounded to cents.
func sumAmount(q *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := q.Select("COALESCE(SUM(amount), 0)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}
