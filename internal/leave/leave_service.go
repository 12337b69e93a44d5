package leave

import (
	"context"
	"errors"

	employeeerrors "github.com/ahmadluay9/hr-app/internal/employee/errors"
	leaveerrors "github.com/ahmadluay9/hr-app/internal/leave/errors"
	"github.com/ahmadluay9/hr-app/internal/quota"
	"github.com/ahmadluay9/hr-app/internal/shared/contextutil"
	"github.com/ahmadluay9/hr-app/internal/shared/memdb"
	"github.com/ahmadluay9/hr-app/internal/shared/workdays"

	"go.uber.org/zap"
)

// EmployeeDirectory is the slice of the employee registry this module
// needs: existence checks, ledger reads and serialized ledger
// mutations. The employee repository satisfies it.
type EmployeeDirectory interface {
	Exists(ctx context.Context, id int) bool
	Balances(ctx context.Context, id int) (quota.Balances, bool)
	UpdateBalances(ctx context.Context, id int, mutate func(*quota.Balances) error) error
}

type Service interface {
	Create(ctx context.Context, employeeID int, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, statusFilter string) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID int) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id int, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeDirectory
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

// Create validates a new request against the employee's current quota
// and persists it as pending. Creation never touches the ledger; quota
// is consumed only when the request is approved.
func (s *service) Create(ctx context.Context, employeeID int, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	balances, ok := s.employees.Balances(ctx, employeeID)
	if !ok {
		s.logger.Warn("create leave employee not found", zap.Int("employee_id", employeeID))
		return LeaveResponse{}, employeeerrors.NotFound(employeeID)
	}

	category, err := quota.ParseCategory(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	duration := workdays.Between(start, end)
	if duration <= 0 {
		s.logger.Warn("create leave invalid range",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	remaining := balances.ByCategory(category).Remaining()
	if remaining < duration {
		s.logger.Warn("create leave insufficient balance",
			zap.Int("employee_id", employeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("required", duration),
			zap.Int("available", remaining),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(category, duration, remaining)
	}

	l := s.repo.Create(ctx, employeeID, category, start, end, req.Reason)

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.Int("leave_id", l.ID),
		zap.Int("employee_id", employeeID),
		zap.Int("duration_days", duration),
	)
	return mapToResponse(l), nil
}

func (s *service) GetAll(ctx context.Context, statusFilter string) ([]LeaveResponse, error) {
	if statusFilter == "" {
		return mapToListResponse(s.repo.FindAll(ctx)), nil
	}

	status, err := ParseStatus(statusFilter)
	if err != nil {
		return nil, leaveerrors.ErrInvalidStatus
	}
	return mapToListResponse(s.repo.FindAllByStatus(ctx, status)), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int) ([]LeaveResponse, error) {
	if !s.employees.Exists(ctx, employeeID) {
		return nil, employeeerrors.NotFound(employeeID)
	}
	// An employee with no requests yields an empty list, not an error.
	return mapToListResponse(s.repo.FindAllByEmployee(ctx, employeeID)), nil
}

// UpdateStatus applies a status transition and reconciles the ledger.
// The rules, against the current balance:
//
//   - newly approved (old != approved, new == approved): re-check the
//     remaining quota, then credit the request's duration;
//   - leaving approved (old == approved, new != approved): reclaim the
//     duration unconditionally, restoring the pre-approval value;
//   - anything else, including a no-op transition: no ledger mutation.
//
// The credit/reclaim runs inside the employee table's write lock, and
// the status is committed only after the mutation succeeds; on failure
// the stored status is unchanged.
func (s *service) UpdateStatus(ctx context.Context, id int, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	newStatus, err := ParseStatus(req.Status)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	s.logger.Debug("update leave status requested",
		zap.Int("leave_id", id),
		zap.String("target_status", string(newStatus)),
	)

	l, ok := s.repo.FindByID(ctx, id)
	if !ok {
		s.logger.Warn("update leave status not found", zap.Int("leave_id", id))
		return LeaveResponse{}, leaveerrors.NotFound(id)
	}

	// Orphaned requests (employee deleted since creation) cannot be
	// transitioned: there is no ledger left to reconcile against.
	if !s.employees.Exists(ctx, l.EmployeeID) {
		s.logger.Warn("update leave status employee missing",
			zap.Int("leave_id", id),
			zap.Int("employee_id", l.EmployeeID),
		)
		return LeaveResponse{}, employeeerrors.NotFound(l.EmployeeID)
	}

	// Duration is recomputed from the stored dates; they were validated
	// at creation and are immutable afterwards.
	duration := workdays.Between(l.StartDate, l.EndDate)

	isNewlyApproved := newStatus == StatusApproved && l.Status != StatusApproved
	wasPreviouslyApproved := l.Status == StatusApproved && newStatus != StatusApproved

	switch {
	case isNewlyApproved:
		// Balance may have been consumed by other approvals since this
		// request was created, so the sufficiency check runs again, and
		// atomically with the credit.
		err = s.employees.UpdateBalances(ctx, l.EmployeeID, func(b *quota.Balances) error {
			balance := b.ByCategory(l.LeaveType)
			if balance.Remaining() < duration {
				return leaveerrors.InsufficientBalance(l.LeaveType, duration, balance.Remaining())
			}
			balance.Credit(duration)
			return nil
		})
	case wasPreviouslyApproved:
		// Every credit has exactly one matching reclaim when the status
		// leaves approved; no floor check is needed.
		err = s.employees.UpdateBalances(ctx, l.EmployeeID, func(b *quota.Balances) error {
			b.ByCategory(l.LeaveType).Reclaim(duration)
			return nil
		})
	}
	if err != nil {
		if errors.Is(err, memdb.ErrRowNotFound) {
			err = employeeerrors.NotFound(l.EmployeeID)
		}
		s.logger.Warn("update leave status reconciliation failed",
			zap.Int("leave_id", id),
			zap.String("target_status", string(newStatus)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	updated, ok := s.repo.UpdateStatus(ctx, id, newStatus)
	if !ok {
		return LeaveResponse{}, leaveerrors.NotFound(id)
	}

	s.logger.Info("update leave status success",
		zap.Int("leave_id", id),
		zap.String("status", string(newStatus)),
	)
	return mapToResponse(updated), nil
}
