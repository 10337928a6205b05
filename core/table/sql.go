package table

import (
	"context"
	"time"

	"bank-reconciler/core/utils"

	"gorm.io/gorm"
)

// LoadQuery runs a SQL query and exposes its result set as a Table.
// Column names go through the same normalization as spreadsheet headers.
func LoadQuery(ctx context.Context, db *gorm.DB, query string, args ...any) (*Table, error) {
	if db == nil {
		return nil, &MalformedInputError{Source: "query", Reason: "no database connection"}
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, &MalformedInputError{Source: "query", Reason: "query failed", Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &MalformedInputError{Source: "query", Reason: "failed to read columns", Err: err}
	}

	var records [][]Cell
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &MalformedInputError{Source: "query", Reason: "failed to scan row", Err: err}
		}

		rec := make([]Cell, len(columns))
		for i, v := range values {
			rec[i] = valueCell(v)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &MalformedInputError{Source: "query", Reason: "failed to iterate rows", Err: err}
	}

	return New(columns, records, 1), nil
}

// valueCell converts a scanned driver value into a cell.
func valueCell(v any) Cell {
	switch val := v.(type) {
	case nil:
		return Cell{}
	case time.Time:
		return TimeCell(val)
	case string, []byte:
		// Text protocols (MySQL) deliver DECIMAL columns as bytes.
		return inferCell(utils.ToString(val))
	case bool:
		return TextCell(utils.ToString(val))
	}
	if f, ok := utils.ToFloat(v); ok {
		return NumberCell(f)
	}
	return TextCell(utils.ToString(v))
}
