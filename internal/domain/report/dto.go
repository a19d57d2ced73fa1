package report

import "context"

// File is a generated report ready to stream to the client.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ReportService interface {
	// SalariesWorkbook renders the month's master and admin payroll
	// tables as an xlsx workbook.
	SalariesWorkbook(ctx context.Context, month string) (*File, error)
}
