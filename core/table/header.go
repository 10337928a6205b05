package table

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NormalizeHeader cleans a raw column name: newlines become a single space,
// runs of spaces collapse into one and surrounding whitespace is trimmed.
func NormalizeHeader(raw string) string {
	s := newlineReplacer.Replace(raw)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return norm.NFC.String(strings.TrimSpace(s))
}

// buildColumns normalizes a raw header. Blank names become "Unnamed: <i>" and
// repeated names get ".1", ".2" suffixes so every column stays addressable.
func buildColumns(header []string) []string {
	columns := make([]string, len(header))
	used := make(map[string]bool, len(header))
	suffix := make(map[string]int, len(header))
	for i, raw := range header {
		name := NormalizeHeader(raw)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		// A suffixed name may itself be taken by a later or earlier column ("A", "A.1", "A")
		for base := name; used[name]; {
			suffix[base]++
			name = fmt.Sprintf("%s.%d", base, suffix[base])
		}
		used[name] = true
		columns[i] = name
	}
	return columns
}
