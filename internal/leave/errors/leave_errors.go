package leaveerrors

import (
	"net/http"

	"github.com/ahmadluay9/hr-app/internal/quota"
	"github.com/ahmadluay9/hr-app/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of: vacation, sick, personal",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of: pending, approved, rejected",
		http.StatusBadRequest,
	)

	// ErrInvalidRange covers both a reversed date range and a span
	// containing no business days (a weekend-only request prices to
	// zero and is rejected the same way).
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be after start date.",
		http.StatusBadRequest,
	)
)

// NotFound reports a missing leave request, carrying the id that
// failed to resolve.
func NotFound(id int) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeNotFound,
		http.StatusNotFound,
		"Leave request with ID %d not found", id,
	)
}

// InsufficientBalance reports a request or approval priced above the
// category's remaining quota, with required vs available units.
func InsufficientBalance(category quota.Category, required, available int) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeInvalidInput,
		http.StatusBadRequest,
		"Insufficient %s leave balance. Required: %d, Available: %d",
		category, required, available,
	)
}
