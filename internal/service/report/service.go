package report

import (
	"context"
	"fmt"

	"github.com/simon1400/barbitch-admin/internal/domain/report"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportServiceImpl struct {
	salaries salary.SalaryService
}

func NewReportService(salaries salary.SalaryService) report.ReportService {
	return &ReportServiceImpl{salaries: salaries}
}

// SalariesWorkbook renders the monthly payroll screen as a two-sheet
// spreadsheet, one sheet per track.
func (s *ReportServiceImpl) SalariesWorkbook(ctx context.Context, month string) (*report.File, error) {
	data, err := s.salaries.Salaries(ctx, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeMastersSheet(f, data.Masters); err != nil {
		return nil, err
	}
	if err := writeAdminsSheet(f, data.Admins); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &report.File{
		Filename:    fmt.Sprintf("salaries-%s.xlsx", data.Month),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

func writeMastersSheet(f *excelize.File, masters salary.MastersResult) error {
	const sheet = "Masters"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := []string{"Name", "Revenue", "Tips", "Clients", "Penalty", "Bonus", "Deduction", "Advance", "Salary", "Tax", "Net result", "Remaining", "Excess"}
	if err := writeHeaders(f, sheet, headers); err != nil {
		return err
	}

	for i, row := range masters.Summary {
		values := []interface{}{
			row.Name, row.Revenue, row.Tips, row.Clients,
			row.Penalty, row.Bonus, row.Deduction, row.Advance,
			row.Salary, row.Tax, row.NetResult, row.Remaining, row.Excess,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	summaryRow := len(masters.Summary) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), masters.SumMasters)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), masters.ClientsServed)
	return nil
}

func writeAdminsSheet(f *excelize.File, admins salary.AdminsResult) error {
	const sheet = "Administrators"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Name", "Hours", "Hourly rate", "Monthly rate", "Penalty", "Bonus", "Deduction", "Advance", "Salary", "Tax", "Net result", "Remaining", "Excess"}
	if err := writeHeaders(f, sheet, headers); err != nil {
		return err
	}

	for i, row := range admins.Summary {
		var monthly interface{}
		if row.FixedMonthlyRate != nil {
			monthly = *row.FixedMonthlyRate
		}
		values := []interface{}{
			row.Name, row.Hours, row.HourlyRate, monthly,
			row.Penalty, row.Bonus, row.Deduction, row.Advance,
			row.Salary, row.Tax, row.NetResult, row.Remaining, row.Excess,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	summaryRow := len(admins.Summary) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), admins.SumAdmins)
	return nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if value == nil {
			continue
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
