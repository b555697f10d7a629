package validator

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z ]{2,}$`)
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("phone", validatePhone)
	mustRegister("person-name", validatePersonName)
	mustRegister("payment-method", validatePaymentMethod)
	mustRegister("membership-status", validateMembershipStatus)
	mustRegister("iso-date", validateISODate)
	mustRegister("money", validateMoney)
}

// Empty values pass; 'required' handles presence.

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || phonePattern.MatchString(value)
}

func validatePersonName(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	return value == "" || namePattern.MatchString(value)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.PaymentMethod(value).Valid()
}

func validateMembershipStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.MembershipStatus(value).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

func validateMoney(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := decimal.NewFromString(value)
	return err == nil
}
