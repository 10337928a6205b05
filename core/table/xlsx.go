package table

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the typed cells of the first worksheet.
// Numeric cells carrying a date number format become Time cells.
func readXLSX(data []byte) ([][]Cell, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	dates := newDateStyles(f)

	grid := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			if raw == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", axis, err)
			}
			cell := xlsxCell(raw, typ)
			if cell.Kind == Number {
				if cell, err = dates.apply(sheet, axis, cell); err != nil {
					return nil, err
				}
			}
			cells[j] = cell
		}
		grid[i] = cells
	}
	return grid, nil
}

// xlsxCell types a raw cell value using the stored cell type.
func xlsxCell(raw string, typ excelize.CellType) Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if isNAMarker(raw) {
			return Cell{}
		}
		return TextCell(raw)
	case excelize.CellTypeBool, excelize.CellTypeError:
		return TextCell(raw)
	default:
		// Numeric, date and formula cells: the stored value is numeric unless the formula produced text.
		return sheetCell(raw)
	}
}

// dateStyles resolves whether a cell style formats its number as a date, caching per style.
type dateStyles struct {
	f        *excelize.File
	date1904 bool
	byStyle  map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	d := &dateStyles{f: f, byStyle: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// apply converts a numeric cell to a Time cell when its style is a date format.
func (d *dateStyles) apply(sheet, axis string, c Cell) (Cell, error) {
	idx, err := d.f.GetCellStyle(sheet, axis)
	if err != nil {
		return c, fmt.Errorf("failed to read style of %s: %w", axis, err)
	}

	isDate, ok := d.byStyle[idx]
	if !ok {
		isDate = d.lookup(idx)
		d.byStyle[idx] = isDate
	}
	if !isDate {
		return c, nil
	}

	t, err := excelize.ExcelDateToTime(c.Num, d.date1904)
	if err != nil {
		return c, nil
	}
	return TimeCell(t), nil
}

func (d *dateStyles) lookup(idx int) bool {
	if idx == 0 {
		return false
	}
	style, err := d.f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat reports whether a built-in number format id renders a date or time.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom number format code contains date or time tokens.
// Quoted literals, escaped characters and bracketed sections (colors, locales) are ignored.
func isDateFormat(code string) bool {
	// Only the first section formats positive numbers
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	var inQuote, inBracket bool
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}
