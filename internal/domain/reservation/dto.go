package reservation

import "context"

// Event statuses the booking platform reports; anything else counts as
// a regular reservation.
const (
	StatusCancelled = "cancelled"
	StatusNoShow    = "noshow"
)

// Color tags the salon uses as service-category proxies on the booking
// platform.
const (
	ColorPaid    = "#FF787D"
	ColorFixed   = "#822949"
	ColorUnknown = "unknown"
)

// DailyCount is one day of the dense reservation chart series.
type DailyCount struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Paid      int    `json:"paid"`
	Cancelled int    `json:"cancelled"`
	NoShow    int    `json:"noshow"`
}

// MetricsResponse is the reservation block of the dashboard.
type MetricsResponse struct {
	Month        string       `json:"month"`
	All          int          `json:"all"`
	Cancelled    int          `json:"cancelled"`
	NoShow       int          `json:"noshow"`
	Paid         int          `json:"paid"`
	PastPaid     int          `json:"past_paid"`
	Fixed        int          `json:"fixed"`
	Daily        []DailyCount `json:"daily"`
	CreatedMonth int          `json:"created_month"`
	CreatedToday int          `json:"created_today"`
	// MonthIndex is created reservations per elapsed day, one
	// decimal.
	MonthIndex float64 `json:"month_index"`
}

type ReservationService interface {
	Metrics(ctx context.Context, month string) (*MetricsResponse, error)
	// EmployeeDaily is the per-master chart series for one booking
	// platform employee.
	EmployeeDaily(ctx context.Context, employeeID, month string) ([]DailyCount, error)
}
