package reconcile

import (
	"fmt"
	"strings"

	"bank-reconciler/core/table"
)

// Side identifies which party produced a movement listing.
type Side int

const (
	// Company is the internal accounting side.
	Company Side = iota
	// Bank is the bank statement side.
	Bank
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Company:
		return "company"
	case Bank:
		return "bank"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide parses "company" or "bank" (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "company":
		return Company, nil
	case "bank":
		return Bank, nil
	default:
		return 0, fmt.Errorf("unknown side %q: expected company or bank", s)
	}
}

// Schema describes where a side keeps its amounts and which lane wins when both are filled.
type Schema struct {
	// Side is the party this schema reads.
	Side Side
	// DebitColumn holds outgoing amounts (cargos).
	DebitColumn string
	// CreditColumn holds incoming amounts (abonos).
	CreditColumn string
	// CreditFirst makes the credit lane take priority over the debit lane.
	CreditFirst bool
}

var (
	// CompanySchema reads the accounting export. Credits win over debits.
	CompanySchema = Schema{
		Side:         Company,
		DebitColumn:  "VALOR CARGOS",
		CreditColumn: "VALOR ABONOS",
		CreditFirst:  true,
	}

	// BankSchema reads the bank statement. Debits win over credits.
	BankSchema = Schema{
		Side:         Bank,
		DebitColumn:  "Cargo (US$)",
		CreditColumn: "Abono (US$)",
		CreditFirst:  false,
	}
)

// SchemaFor returns the fixed schema of a side.
func SchemaFor(side Side) Schema {
	if side == Bank {
		return BankSchema
	}
	return CompanySchema
}

// Debit returns the cleaned debit amount of a row. A missing column reads as 0.
func (s Schema) Debit(row table.Row) (float64, error) {
	return CleanValue(row.Get(s.DebitColumn))
}

// Credit returns the cleaned credit amount of a row. A missing column reads as 0.
func (s Schema) Credit(row table.Row) (float64, error) {
	return CleanValue(row.Get(s.CreditColumn))
}
