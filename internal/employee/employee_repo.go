package employee

import (
	"context"

	"github.com/ahmadluay9/hr-app/internal/quota"
	"github.com/ahmadluay9/hr-app/internal/shared/memdb"
)

type Repository interface {
	Create(ctx context.Context, name, position, department string) Employee
	FindAll(ctx context.Context) []Employee
	FindByID(ctx context.Context, id int) (Employee, bool)
	Exists(ctx context.Context, id int) bool
	Balances(ctx context.Context, id int) (quota.Balances, bool)
	Update(ctx context.Context, id int, name, position, department string) (Employee, bool)
	Delete(ctx context.Context, id int) bool

	// UpdateBalances runs mutate on the employee's ledger inside the
	// table's write lock, so a balance check-then-act is never
	// interleaved with another mutation of the same ledger. mutate
	// errors abort the write and propagate unchanged.
	UpdateBalances(ctx context.Context, id int, mutate func(*quota.Balances) error) error

	// Seed installs a fixture record under an explicit id.
	Seed(ctx context.Context, e Employee)
}

type repository struct {
	table *memdb.Table[Employee]
}

func NewRepository() Repository {
	return &repository{table: memdb.NewTable[Employee]()}
}

func (r *repository) Create(_ context.Context, name, position, department string) Employee {
	return r.table.Insert(func(id int) *Employee {
		return &Employee{
			ID:            id,
			Name:          name,
			Position:      position,
			Department:    department,
			LeaveBalances: quota.NewBalances(),
		}
	})
}

func (r *repository) FindAll(_ context.Context) []Employee {
	return r.table.List(nil)
}

func (r *repository) FindByID(_ context.Context, id int) (Employee, bool) {
	return r.table.Get(id)
}

func (r *repository) Exists(_ context.Context, id int) bool {
	return r.table.Has(id)
}

func (r *repository) Balances(_ context.Context, id int) (quota.Balances, bool) {
	e, ok := r.table.Get(id)
	if !ok {
		return quota.Balances{}, false
	}
	return e.LeaveBalances, true
}

func (r *repository) Update(_ context.Context, id int, name, position, department string) (Employee, bool) {
	updated, err := r.table.Update(id, func(e *Employee) error {
		e.Name = name
		e.Position = position
		e.Department = department
		return nil
	})
	if err != nil {
		return Employee{}, false
	}
	return updated, true
}

func (r *repository) Delete(_ context.Context, id int) bool {
	return r.table.Delete(id)
}

func (r *repository) UpdateBalances(_ context.Context, id int, mutate func(*quota.Balances) error) error {
	_, err := r.table.Update(id, func(e *Employee) error {
		return mutate(&e.LeaveBalances)
	})
	return err
}

func (r *repository) Seed(_ context.Context, e Employee) {
	row := e
	r.table.Seed(e.ID, &row)
}
