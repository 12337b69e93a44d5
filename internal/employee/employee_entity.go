package employee

import (
	"github.com/ahmadluay9/hr-app/internal/quota"
)

type Employee struct {
	ID         int
	Name       string
	Position   string
	Department string

	// LeaveBalances is owned by the employee record: created with the
	// default allocations at registration and removed with it.
	LeaveBalances quota.Balances
}
