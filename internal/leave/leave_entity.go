package leave

import (
	"fmt"
	"time"

	"github.com/ahmadluay9/hr-app/internal/quota"
)

// Status is the closed set of leave request states. Transitions are
// not a linear progression: any status may be set from any other, and
// the service reconciles the ledger on every change.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus validates a wire value against the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown leave status %q", s)
}

type LeaveRequest struct {
	ID int

	// EmployeeID is a reference, not ownership: the employee may be
	// deleted independently, leaving this request orphaned.
	EmployeeID int

	LeaveType quota.Category
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status
}
