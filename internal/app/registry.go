package app

import (
	"context"
	"time"

	"github.com/ahmadluay9/hr-app/internal/employee"
	"github.com/ahmadluay9/hr-app/internal/leave"
	"github.com/ahmadluay9/hr-app/internal/quota"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine) error {
	// --- Repositories (process-local, constructed once) ---
	employeeRepo := employee.NewRepository()
	leaveRepo := leave.NewRepository()

	seedData(employeeRepo, leaveRepo)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	leaveService := leave.NewService(leaveRepo, employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
	}

	return nil
}

// seedData installs the demo records the service has always started
// with: two employees and one already-approved vacation request.
func seedData(employees employee.Repository, leaves leave.Repository) {
	ctx := context.Background()

	employees.Seed(ctx, employee.Employee{
		ID:            1,
		Name:          "Alice Smith",
		Position:      "Software Engineer",
		Department:    "Technology",
		LeaveBalances: quota.NewBalances(),
	})
	employees.Seed(ctx, employee.Employee{
		ID:         2,
		Name:       "Bob Johnson",
		Position:   "HR Manager",
		Department: "Human Resources",
		LeaveBalances: quota.Balances{
			Vacation: quota.Balance{Allocated: 20, Used: 5},
			Sick:     quota.Balance{Allocated: 10, Used: 1},
			Personal: quota.Balance{Allocated: quota.DefaultPersonalDays},
		},
	})

	leaves.Seed(ctx, leave.LeaveRequest{
		ID:         1,
		EmployeeID: 2,
		LeaveType:  quota.CategoryVacation,
		StartDate:  time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.October, 22, 0, 0, 0, 0, time.UTC),
		Reason:     "Family vacation.",
		Status:     leave.StatusApproved,
	})
}
