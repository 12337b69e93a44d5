package leave

import (
	"context"
	"time"

	"github.com/ahmadluay9/hr-app/internal/quota"
	"github.com/ahmadluay9/hr-app/internal/shared/memdb"
)

type Repository interface {
	Create(ctx context.Context, employeeID int, leaveType quota.Category, start, end time.Time, reason string) LeaveRequest
	FindAll(ctx context.Context) []LeaveRequest
	FindAllByStatus(ctx context.Context, status Status) []LeaveRequest
	FindAllByEmployee(ctx context.Context, employeeID int) []LeaveRequest
	FindByID(ctx context.Context, id int) (LeaveRequest, bool)
	UpdateStatus(ctx context.Context, id int, status Status) (LeaveRequest, bool)

	// Seed installs a fixture record under an explicit id.
	Seed(ctx context.Context, l LeaveRequest)
}

type repository struct {
	table *memdb.Table[LeaveRequest]
}

func NewRepository() Repository {
	return &repository{table: memdb.NewTable[LeaveRequest]()}
}

func (r *repository) Create(_ context.Context, employeeID int, leaveType quota.Category, start, end time.Time, reason string) LeaveRequest {
	return r.table.Insert(func(id int) *LeaveRequest {
		return &LeaveRequest{
			ID:         id,
			EmployeeID: employeeID,
			LeaveType:  leaveType,
			StartDate:  start,
			EndDate:    end,
			Reason:     reason,
			Status:     StatusPending,
		}
	})
}

func (r *repository) FindAll(_ context.Context) []LeaveRequest {
	return r.table.List(nil)
}

func (r *repository) FindAllByStatus(_ context.Context, status Status) []LeaveRequest {
	return r.table.List(func(l *LeaveRequest) bool {
		return l.Status == status
	})
}

func (r *repository) FindAllByEmployee(_ context.Context, employeeID int) []LeaveRequest {
	return r.table.List(func(l *LeaveRequest) bool {
		return l.EmployeeID == employeeID
	})
}

func (r *repository) FindByID(_ context.Context, id int) (LeaveRequest, bool) {
	return r.table.Get(id)
}

func (r *repository) UpdateStatus(_ context.Context, id int, status Status) (LeaveRequest, bool) {
	updated, err := r.table.Update(id, func(l *LeaveRequest) error {
		l.Status = status
		return nil
	})
	if err != nil {
		return LeaveRequest{}, false
	}
	return updated, true
}

func (r *repository) Seed(_ context.Context, l LeaveRequest) {
	row := l
	r.table.Seed(l.ID, &row)
}
