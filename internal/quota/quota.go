// Package quota holds the leave balance ledger: per-category allocated
// and used counters owned 1:1 by an employee record.
package quota

import "fmt"

// Category is the closed set of leave types.
type Category string

const (
	CategoryVacation Category = "vacation"
	CategorySick     Category = "sick"
	CategoryPersonal Category = "personal"
)

// Default allocations per category. Deliberately asymmetric.
const (
	DefaultVacationDays = 15
	DefaultSickDays     = 10
	DefaultPersonalDays = 5
)

// ParseCategory validates a wire value against the closed set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryVacation, CategorySick, CategoryPersonal:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown leave category %q", s)
}

// Balance tracks one category's quota. Invariant after every correct
// mutation sequence: 0 <= Used <= Allocated.
type Balance struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
}

// Remaining returns the units still available.
func (b *Balance) Remaining() int {
	return b.Allocated - b.Used
}

// Credit consumes n units. The caller must already have verified
// Remaining() >= n; this is the mutation half of the state machine's
// check-then-act and performs no validation of its own.
func (b *Balance) Credit(n int) {
	b.Used += n
}

// Reclaim reverses a previous Credit of n units. The state machine
// pairs every Credit with at most one Reclaim, so Used cannot go
// negative in correct usage.
func (b *Balance) Reclaim(n int) {
	b.Used -= n
}

// Balances is the full ledger of one employee, one Balance per
// category.
type Balances struct {
	Vacation Balance `json:"vacation"`
	Sick     Balance `json:"sick"`
	Personal Balance `json:"personal"`
}

// NewBalances returns the default allocations given to every new
// employee.
func NewBalances() Balances {
	return Balances{
		Vacation: Balance{Allocated: DefaultVacationDays},
		Sick:     Balance{Allocated: DefaultSickDays},
		Personal: Balance{Allocated: DefaultPersonalDays},
	}
}

// ByCategory maps a category to its balance field. The switch is the
// explicit enumeration-to-field association: adding a category without
// extending it is a compile-visible gap, not a runtime lookup miss.
func (b *Balances) ByCategory(c Category) *Balance {
	switch c {
	case CategoryVacation:
		return &b.Vacation
	case CategorySick:
		return &b.Sick
	case CategoryPersonal:
		return &b.Personal
	}
	return nil
}
