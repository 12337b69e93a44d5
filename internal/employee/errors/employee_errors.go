package employeeerrors

import (
	"net/http"

	"github.com/ahmadluay9/hr-app/internal/shared/apperror"
)

// NotFound reports a missing employee, carrying the id that failed to
// resolve.
func NotFound(id int) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeNotFound,
		http.StatusNotFound,
		"Employee with ID %d not found", id,
	)
}
