package expense

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// Defaults applied to incomplete cost entries, mirroring how the
// salon's bookkeeping labels them.
const (
	DefaultName     = "Bez názvu"
	DefaultCategory = "Ostatní"
)

// Item is one salon expense entry.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Sum      float64 `json:"sum"`
	NoVAT    float64 `json:"no_vat"`
	Comment  string  `json:"comment,omitempty"`
	Category string  `json:"category"`
}

// CategoryTotal is the aggregated spend of one expense category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Sum      float64 `json:"sum"`
	Count    int     `json:"count"`
}

// ListResponse is the expense screen: entries newest-first plus
// per-category totals.
type ListResponse struct {
	Month      string          `json:"month,omitempty"`
	Items      []Item          `json:"items"`
	Categories []CategoryTotal `json:"categories"`
	Total      float64         `json:"total"`
}

// Source fetches expense entries from the record store.
type Source interface {
	Expenses(ctx context.Context, p period.Period) ([]Item, error)
	AllExpenses(ctx context.Context) ([]Item, error)
}

type ExpenseService interface {
	ListMonth(ctx context.Context, month string) (*ListResponse, error)
	ListAll(ctx context.Context) (*ListResponse, error)
}
