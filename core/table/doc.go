// Package table loads tabular movement listings into a normalized, in-memory Table.
//
// A Table is an ordered list of column names plus the rows found below the header row.
// Sources are spreadsheets (xlsx, legacy xls), CSV exports and SQL result sets.
//
// # Header Row
//
// Bank and accounting exports carry a title block above the real header. LoadOptions.SkipRows
// discards that many physical rows; the next row is taken as the header. Header names are
// normalized with NormalizeHeader (newlines become spaces, repeated spaces collapse, the
// result is trimmed) so that "VALOR\nCARGOS" and "VALOR  CARGOS" both resolve to "VALOR CARGOS".
//
// # Cells
//
// Every cell is Empty, a Number or Text. No row filtering happens here: blank rows are kept
// and resolve to skipped keys downstream. Row.Get returns the Empty cell for unknown columns.
//
// # Usage
//
//	t, err := table.Load(file, table.LoadOptions{Name: "bank.xlsx", SkipRows: 4})
//	if err != nil {
//	    var malformed *table.MalformedInputError
//	    errors.As(err, &malformed)
//	}
//	for _, row := range t.Rows {
//	    fmt.Println(row.Get("Cargo (US$)"))
//	}
package table
