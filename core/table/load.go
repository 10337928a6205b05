package table

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a tabular source.
type Format string

const (
	// FormatAuto detects the format from the file name, then from the content signature.
	FormatAuto Format = ""
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy BIFF8 workbook.
	FormatXLS Format = "xls"
	// FormatCSV is a delimited text export.
	FormatCSV Format = "csv"
)

var (
	zipSignature = []byte("PK\x03\x04")
	cfbSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// LoadOptions controls how a source is turned into a Table.
type LoadOptions struct {
	// Name is the source name. Its extension drives format detection and it is quoted in errors.
	Name string
	// Format forces a format. FormatAuto detects it.
	Format Format
	// SkipRows is the number of leading rows discarded before the header row.
	SkipRows int
}

// Load reads a tabular source and returns its rows below the header.
// The first worksheet is used for workbooks.
func Load(r io.Reader, opts LoadOptions) (*Table, error) {
	if opts.SkipRows < 0 {
		return nil, fmt.Errorf("skip rows must not be negative, got %d", opts.SkipRows)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.Name, err)
	}

	format := opts.Format
	if format == FormatAuto {
		format = DetectFormat(opts.Name, data)
	}

	var grid [][]Cell
	switch format {
	case FormatXLSX:
		grid, err = readXLSX(data)
	case FormatXLS:
		grid, err = readXLS(data)
	case FormatCSV:
		grid, err = readCSV(data)
	default:
		return nil, &MalformedInputError{Source: opts.Name, Reason: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, &MalformedInputError{Source: opts.Name, Reason: fmt.Sprintf("not a readable %s document", format), Err: err}
	}

	return fromGrid(grid, opts)
}

// DetectFormat guesses the format of a source from its name and leading bytes.
// Unknown content is treated as xlsx so that the workbook parser reports it.
func DetectFormat(name string, head []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv", ".txt":
		return FormatCSV
	}

	switch {
	case bytes.HasPrefix(head, zipSignature):
		return FormatXLSX
	case bytes.HasPrefix(head, cfbSignature):
		return FormatXLS
	default:
		return FormatXLSX
	}
}

// fromGrid splits a raw grid into header and data rows.
func fromGrid(grid [][]Cell, opts LoadOptions) (*Table, error) {
	if len(grid) <= opts.SkipRows {
		return nil, &MalformedInputError{
			Source: opts.Name,
			Reason: fmt.Sprintf("header row not found: expected it at row %d but the sheet has %d rows", opts.SkipRows+1, len(grid)),
		}
	}

	headerCells := grid[opts.SkipRows]
	header := make([]string, len(headerCells))
	blank := true
	for i, c := range headerCells {
		header[i] = c.String()
		if strings.TrimSpace(header[i]) != "" {
			blank = false
		}
	}
	if blank {
		return nil, &MalformedInputError{
			Source: opts.Name,
			Reason: fmt.Sprintf("header row %d is empty", opts.SkipRows+1),
		}
	}

	// Sheet rows are 1-based; data starts right after the header.
	return New(header, grid[opts.SkipRows+1:], opts.SkipRows+2), nil
}
