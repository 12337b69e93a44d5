package quota_test

import (
	"testing"

	"github.com/ahmadluay9/hr-app/internal/quota"

	"github.com/stretchr/testify/assert"
)

func TestNewBalances_Defaults(t *testing.T) {
	b := quota.NewBalances()

	assert.Equal(t, 15, b.Vacation.Allocated)
	assert.Equal(t, 10, b.Sick.Allocated)
	assert.Equal(t, 5, b.Personal.Allocated)
	assert.Equal(t, 0, b.Vacation.Used)
	assert.Equal(t, 0, b.Sick.Used)
	assert.Equal(t, 0, b.Personal.Used)
}

func TestBalance_CreditAndReclaim(t *testing.T) {
	b := quota.Balance{Allocated: 10}
	assert.Equal(t, 10, b.Remaining())

	b.Credit(4)
	assert.Equal(t, 4, b.Used)
	assert.Equal(t, 6, b.Remaining())

	b.Reclaim(4)
	assert.Equal(t, 0, b.Used)
	assert.Equal(t, 10, b.Remaining())
}

func TestBalances_ByCategory(t *testing.T) {
	b := quota.NewBalances()

	assert.Same(t, &b.Vacation, b.ByCategory(quota.CategoryVacation))
	assert.Same(t, &b.Sick, b.ByCategory(quota.CategorySick))
	assert.Same(t, &b.Personal, b.ByCategory(quota.CategoryPersonal))
	assert.Nil(t, b.ByCategory(quota.Category("bogus")))
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"vacation", "sick", "personal"} {
		c, err := quota.ParseCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, quota.Category(valid), c)
	}

	_, err := quota.ParseCategory("sabbatical")
	assert.Error(t, err)
}
