package employee

import (
	"context"

	employeeerrors "github.com/ahmadluay9/hr-app/internal/employee/errors"
	"github.com/ahmadluay9/hr-app/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
	GetBalances(ctx context.Context, id int) (BalancesResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("department", req.Department),
	)

	e := s.repo.Create(ctx, req.Name, req.Position, req.Department)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", e.ID),
	)
	return mapToResponse(e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return mapToListResponse(s.repo.FindAll(ctx)), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.NotFound(id)
	}
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int("employee_id", id))

	// Profile fields only; the leave ledger is owned by the state
	// machine and survives profile updates untouched.
	e, ok := s.repo.Update(ctx, id, req.Name, req.Position, req.Department)
	if !ok {
		s.logger.Warn("update employee not found", zap.Int("employee_id", id))
		return EmployeeResponse{}, employeeerrors.NotFound(id)
	}

	s.logger.Info("update employee success", zap.Int("employee_id", id))
	return mapToResponse(e), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete employee requested", zap.Int("employee_id", id))

	// Leave requests referencing this employee are intentionally left
	// in place; they become unresolvable and any later status update on
	// them fails with not-found.
	if !s.repo.Delete(ctx, id) {
		s.logger.Warn("delete employee not found", zap.Int("employee_id", id))
		return employeeerrors.NotFound(id)
	}

	s.logger.Info("delete employee success", zap.Int("employee_id", id))
	return nil
}

func (s *service) GetBalances(ctx context.Context, id int) (BalancesResponse, error) {
	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return BalancesResponse{}, employeeerrors.NotFound(id)
	}
	return mapBalances(e.LeaveBalances), nil
}
