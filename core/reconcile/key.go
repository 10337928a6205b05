package reconcile

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tag is the two-letter class of a match key.
type Tag string

const (
	// TagNA groups company debits with bank credits.
	TagNA Tag = "NA"
	// TagNC groups company credits with bank debits.
	TagNC Tag = "NC"
)

// skipKey is the text form of the zero Key.
const skipKey = "SKIP"

// Key is the matching key of a row: a tag plus the amount rounded to cents.
// The zero Key is the SKIP sentinel: the row has no usable amount and takes no part in matching.
type Key struct {
	Tag    Tag
	Amount decimal.Decimal
}

// Skip is the sentinel key for rows without a usable amount.
var Skip = Key{}

// newKey rounds the amount to 2 decimals of its binary value, the way a float is rounded
// when printed with two decimals, so 75.005 (stored as 75.00499...) becomes 75.0.
func newKey(tag Tag, amount float64) Key {
	rounded := strconv.FormatFloat(amount, 'f', 2, 64)
	return Key{Tag: tag, Amount: decimal.RequireFromString(rounded)}
}

// IsSkip reports whether the key is the SKIP sentinel.
func (k Key) IsSkip() bool {
	return k.Tag == ""
}

// String renders the key as tag + amount. The amount keeps at least one decimal:
// "NC100.0", "NA75.01", "NC1234.5".
func (k Key) String() string {
	if k.IsSkip() {
		return skipKey
	}

	s := k.Amount.StringFixed(2)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return string(k.Tag) + s
}
