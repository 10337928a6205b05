package reconcile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bank-reconciler/core/table"
)

// AmountParseError reports a non-empty amount cell that is not numeric.
type AmountParseError struct {
	// Value is the raw cell text.
	Value string
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Value)
}

// CleanValue normalizes an amount cell to a float.
// Empty cells are 0 and numeric cells are returned unchanged. Text is stripped of
// thousands-separator commas and surrounding whitespace before parsing, so whitespace-only
// text is invalid. Dates are never amounts.
func CleanValue(c table.Cell) (float64, error) {
	switch c.Kind {
	case table.Empty:
		return 0, nil
	case table.Number:
		return c.Num, nil
	case table.Time:
		return 0, &AmountParseError{Value: c.String()}
	}

	s := strings.TrimSpace(strings.ReplaceAll(c.Str, ",", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &AmountParseError{Value: c.Str}
	}
	return v, nil
}
