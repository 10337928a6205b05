package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/table"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetPendingCompany lists company rows missing from the bank statement.
	SheetPendingCompany = "PENDING_COMPANY"
	// SheetPendingBank lists bank rows missing from the company ledger.
	SheetPendingBank = "PENDING_BANK"
	// FileName is the download name of the report.
	FileName = "pending_reconciliation.xlsx"
	// ContentType is the MIME type of the report.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Build creates the report workbook. Callers must close it.
func Build(res *reconcile.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	// Reuse the default sheet so the workbook holds exactly the two report sheets
	if err := f.SetSheetName(f.GetSheetName(0), SheetPendingCompany); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPendingBank); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet %s: %w", SheetPendingBank, err)
	}

	styles := &dateStyles{f: f}
	if err := writeSheet(f, styles, SheetPendingCompany, res.PendingCompany); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, styles, SheetPendingBank, res.PendingBank); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// Write encodes the report workbook to w.
func Write(w io.Writer, res *reconcile.Result) error {
	f, err := Build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Bytes returns the encoded report workbook.
func Bytes(res *reconcile.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSheet writes the header row and the rows of t. Empty cells are left blank.
func writeSheet(f *excelize.File, styles *dateStyles, sheet string, t *table.Table) error {
	if t == nil {
		return nil
	}

	for col, name := range t.Columns {
		if _, err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, row := range t.Rows {
		for col, c := range row.Cells {
			var value any
			switch c.Kind {
			case table.Number:
				value = c.Num
			case table.Text:
				value = c.Str
			case table.Time:
				value = c.Time
			default:
				continue
			}
			axis, err := setCell(f, sheet, col+1, i+2, value)
			if err != nil {
				return err
			}
			if c.Kind != table.Time {
				continue
			}
			style, err := styles.get(c.Time)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, axis, axis, style); err != nil {
				return fmt.Errorf("failed to style %s!%s: %w", sheet, axis, err)
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, line int, value any) (string, error) {
	axis, err := excelize.CoordinatesToCellName(col, line)
	if err != nil {
		return "", err
	}
	if err := f.SetCellValue(sheet, axis, value); err != nil {
		return "", fmt.Errorf("failed to write %s!%s: %w", sheet, axis, err)
	}
	return axis, nil
}

const (
	dateFormat     = "yyyy-mm-dd"
	dateTimeFormat = "yyyy-mm-dd hh:mm:ss"
)

// dateStyles creates the date and date-time cell styles on first use.
type dateStyles struct {
	f        *excelize.File
	date     int
	dateTime int
}

// get returns the style for t: a plain date at midnight, a date-time otherwise.
func (s *dateStyles) get(t time.Time) (int, error) {
	midnight := t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0

	target, format := &s.dateTime, dateTimeFormat
	if midnight {
		target, format = &s.date, dateFormat
	}
	if *target != 0 {
		return *target, nil
	}

	style, err := s.f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return 0, fmt.Errorf("failed to create date style: %w", err)
	}
	*target = style
	return style, nil
}
