package table

import (
	"bytes"
	"errors"

	"github.com/shakinm/xlsReader/xls"
)

// readXLS returns the cells of the first worksheet of a legacy workbook.
// The BIFF reader exposes formatted strings, so cell types are inferred from the text.
func readXLS(data []byte) ([][]Cell, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, err
	}

	var grid [][]Cell
	for _, row := range sheet.GetRows() {
		cols := row.GetCols()
		cells := make([]Cell, len(cols))
		for j, col := range cols {
			cells[j] = sheetCell(col.GetString())
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
