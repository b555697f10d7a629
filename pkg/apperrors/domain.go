package apperrors

import (
	"net/http"
)

// Factories used by services when mapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Input ---

var ErrInvalidID = New(CodeValidationFailed, "input", "Invalid ID format", http.StatusBadRequest)

var ErrInvalidDate = New(CodeValidationFailed, "input", "Invalid date format. Use YYYY-MM-DD", http.StatusBadRequest)

// --- Gym ---

var ErrGymNotFound = New(CodeNotFound, "gym", "Gym does not exist", http.StatusNotFound)

var ErrGymAlreadyExists = New(CodeAlreadyExists, "gym", "Email or phone number already exists", http.StatusConflict)

// --- Member ---

var ErrMemberNotFound = New(CodeNotFound, "member", "Member does not exist", http.StatusNotFound)

var ErrMemberPhoneExists = New(CodeAlreadyExists, "member", "Phone number already exists", http.StatusConflict)

var ErrMemberAlreadyInactive = New(CodeInvalidStatus, "member", "Member is already inactive", http.StatusConflict)

// --- Plan ---

var ErrPlanNotFound = New(CodeNotFound, "plan", "Plan does not exist", http.StatusNotFound)

var ErrPlanNameExists = New(CodeAlreadyExists, "plan", "Plan name already exists", http.StatusConflict)

var ErrPlanAlreadyInactive = New(CodeInvalidStatus, "plan", "Plan is already inactive", http.StatusConflict)

var ErrInvalidDuration = New(CodeValidationFailed, "plan", "Duration must be between 1 and 12 months", http.StatusBadRequest)

var ErrInvalidPrice = New(CodeValidationFailed, "plan", "Price must be a positive amount with at most 2 decimal places", http.StatusBadRequest)

var ErrDescriptionTooLong = New(CodeValidationFailed, "plan", "Description cannot exceed 2000 characters", http.StatusBadRequest)

// --- Membership ---

var ErrMembershipNotFound = New(CodeNotFound, "membership", "Membership not found", http.StatusNotFound)

var ErrActiveMembershipNotFound = New(CodeNotFound, "membership", "Active membership not found", http.StatusNotFound)

var ErrMembershipAlreadyActive = New(CodeConflict, "membership", "Member already has an active membership", http.StatusConflict)

var ErrMembershipAlreadyCancelled = New(CodeInvalidStatus, "membership", "Membership already cancelled", http.StatusConflict)

var ErrMembershipStillActive = New(CodeInvalidOperation, "membership", "Membership is still active", http.StatusConflict)

var ErrCancellationWindow = New(CodeInvalidOperation, "membership", "Membership cannot be cancelled near expiry or within the grace period", http.StatusConflict)

var ErrRenewalPeriodExpired = New(CodeInvalidOperation, "membership", "Renewal period expired", http.StatusConflict)

var ErrRenewalFailed = New(CodeInternalError, "membership", "Renewal failed", http.StatusInternalServerError)

var ErrStartDateTooFar = New(CodeValidationFailed, "membership", "Start date cannot be more than 1 day in the future", http.StatusBadRequest)

var ErrEnrollmentFailed = New(CodeInternalError, "membership", "Enrollment failed", http.StatusInternalServerError)

// --- Payment ---

var ErrPaymentNotFound = New(CodeNotFound, "payment", "Payment not found", http.StatusNotFound)

var ErrInvalidAmountFormat = New(CodeValidationFailed, "payment", "Invalid amount format", http.StatusBadRequest)

var ErrAmountNotPositive = New(CodeValidationFailed, "payment", "Amount must be greater than zero", http.StatusBadRequest)

var ErrAmountExceedsPrice = New(CodeValidationFailed, "payment", "Amount cannot exceed plan price", http.StatusBadRequest)

var ErrAmountExceedsBalance = New(CodeInvalidOperation, "payment", "Amount exceeds outstanding balance", http.StatusConflict)

var ErrNoOutstandingBalance = New(CodeInvalidOperation, "payment", "No outstanding balance", http.StatusConflict)

var ErrInvalidPaymentMethod = New(CodeValidationFailed, "payment", "Invalid payment method", http.StatusBadRequest)

var ErrPaymentFailed = New(CodeInternalError, "payment", "Payment could not be processed", http.StatusInternalServerError)

// --- Auth ---

var ErrMissingToken = New(CodeUnauthorized, "auth", "Authorization token required", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

var ErrTenantMismatch = New(CodeForbidden, "auth", "Access to this gym is not allowed", http.StatusForbidden)
