package table

import (
	"bytes"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV parses a delimited export. Content that is not valid UTF-8 is decoded as
// Windows-1252, the encoding banking portals commonly use for their exports.
func readCSV(data []byte) ([][]Cell, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// The CSV reader drops blank lines; each one between two records is restored as an empty
	// row so that header offsets count rows like they do in a sheet. A quoted field may span
	// several lines, so the gap is measured from the last line of the previous record.
	var (
		grid    [][]Cell
		prevEnd int
		offset  int64
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, _ := reader.FieldPos(0)
		for line := prevEnd + 1; line < start; line++ {
			grid = append(grid, nil)
		}

		next := reader.InputOffset()
		prevEnd += bytes.Count(data[offset:next], []byte{'\n'})
		offset = next
		if prevEnd < start {
			// Last record without a trailing newline
			prevEnd = start
		}

		cells := make([]Cell, len(rec))
		for j, raw := range rec {
			cells[j] = sheetCell(raw)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// detectDelimiter picks the most frequent of ',', ';' and tab over the first lines.
func detectDelimiter(data []byte) rune {
	lines := bytes.SplitN(data, []byte("\n"), 21)
	if len(lines) > 20 {
		lines = lines[:20]
	}
	sample := bytes.Join(lines, nil)

	best, bestCount := ',', bytes.Count(sample, []byte(","))
	for _, candidate := range []rune{';', '\t'} {
		if n := bytes.Count(sample, []byte(string(candidate))); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}
