package expense

import (
	"context"
	"testing"

	"github.com/simon1400/barbitch-admin/internal/domain/expense"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	monthly []expense.Item
	all     []expense.Item
}

func (f *fakeSource) Expenses(context.Context, period.Period) ([]expense.Item, error) {
	return f.monthly, nil
}

func (f *fakeSource) AllExpenses(context.Context) ([]expense.Item, error) {
	return f.all, nil
}

func TestListMonthCategoryTotals(t *testing.T) {
	source := &fakeSource{
		monthly: []expense.Item{
			{Name: "Barvy", Sum: 1200, Category: "Materiál"},
			{Name: "Šampony", Sum: 800, Category: "Materiál"},
			{Name: "Nájem", Sum: 30000, Category: "Provoz"},
		},
	}
	svc := NewExpenseService(source)

	resp, err := svc.ListMonth(context.Background(), "2025-03")
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, 32000.0, resp.Total)
	require.Len(t, resp.Categories, 2)
	// Sorted by spend descending.
	assert.Equal(t, expense.CategoryTotal{Category: "Provoz", Sum: 30000, Count: 1}, resp.Categories[0])
	assert.Equal(t, expense.CategoryTotal{Category: "Materiál", Sum: 2000, Count: 2}, resp.Categories[1])
}

func TestListAllEmpty(t *testing.T) {
	svc := NewExpenseService(&fakeSource{})

	resp, err := svc.ListAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.Month)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
}
