package reconcile

import (
	"fmt"

	"bank-reconciler/core/table"
)

// RowError attaches the side and source line to a key derivation failure.
type RowError struct {
	Side Side
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Side, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// DeriveKey maps a row to its matching key.
//
// The priority lane always yields NC and the fallback lane NA. With the company reading
// credits first and the bank reading debits first, a company debit and a bank credit of the
// same amount land on the same NA key (and a company credit and a bank debit on the same NC key).
// Rows with no positive amount get the SKIP key.
func DeriveKey(s Schema, row table.Row) (Key, error) {
	debit, err := s.Debit(row)
	if err != nil {
		return Skip, err
	}
	credit, err := s.Credit(row)
	if err != nil {
		return Skip, err
	}

	first, second := debit, credit
	if s.CreditFirst {
		first, second = credit, debit
	}

	switch {
	case first > 0:
		return newKey(TagNC, first), nil
	case second > 0:
		return newKey(TagNA, second), nil
	default:
		return Skip, nil
	}
}

// DeriveKeys derives the key of every row. The first bad amount aborts the derivation.
func DeriveKeys(s Schema, t *table.Table) ([]Key, error) {
	keys := make([]Key, len(t.Rows))
	for i, row := range t.Rows {
		key, err := DeriveKey(s, row)
		if err != nil {
			return nil, &RowError{Side: s.Side, Line: row.Line, Err: err}
		}
		keys[i] = key
	}
	return keys, nil
}
