package reconcile

import (
	"fmt"
	"strings"

	"bank-reconciler/core/table"

	"github.com/shopspring/decimal"
)

// Mode selects how keys on one side are matched against the other side.
type Mode string

const (
	// MatchMembership marks a row matched when its key occurs anywhere on the other side.
	// Three company rows keyed NC100.0 are all matched by a single bank row with that key.
	MatchMembership Mode = "membership"

	// MatchMultiset pairs rows one to one. When a key occurs n times on one side and m times
	// on the other, the first min(n, m) rows of each side pair up and the rest stay pending.
	MatchMultiset Mode = "multiset"
)

// ParseMode parses a match mode. An empty string selects MatchMembership.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchMembership:
		return MatchMembership, nil
	case MatchMultiset:
		return MatchMultiset, nil
	default:
		return "", fmt.Errorf("unknown match mode %q: expected %s or %s", s, MatchMembership, MatchMultiset)
	}
}

// Options controls a reconciliation run.
type Options struct {
	// Mode is the matching strategy. Empty means MatchMembership.
	Mode Mode
}

// Annotated is a side's table together with the key derived for each of its rows.
type Annotated struct {
	Table *table.Table
	Keys  []Key
}

// Result holds the pending movements of both sides.
// The pending tables keep the original columns and row order; keys are not part of them.
type Result struct {
	// PendingCompany holds company rows with no counterpart in the bank statement.
	PendingCompany *table.Table
	// PendingBank holds bank rows with no counterpart in the company ledger.
	PendingBank *table.Table
	// Summary provides aggregate counts.
	Summary Summary
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// Mode is the matching strategy used.
	Mode Mode `json:"mode"`

	// CompanyRows is the number of company data rows read.
	CompanyRows int `json:"company_rows"`

	// BankRows is the number of bank data rows read.
	BankRows int `json:"bank_rows"`

	// CompanySkipped counts company rows without a usable amount.
	CompanySkipped int `json:"company_skipped"`

	// BankSkipped counts bank rows without a usable amount.
	BankSkipped int `json:"bank_skipped"`

	// MatchedCompany counts company rows with a counterpart.
	MatchedCompany int `json:"matched_company"`

	// MatchedBank counts bank rows with a counterpart.
	MatchedBank int `json:"matched_bank"`

	// PendingCompany counts company rows without a counterpart.
	PendingCompany int `json:"pending_company"`

	// PendingBank counts bank rows without a counterpart.
	PendingBank int `json:"pending_bank"`

	// PendingCompanyAmount is the sum of the keyed amounts of pending company rows.
	PendingCompanyAmount decimal.Decimal `json:"pending_company_amount"`

	// PendingBankAmount is the sum of the keyed amounts of pending bank rows.
	PendingBankAmount decimal.Decimal `json:"pending_bank_amount"`
}

// Message returns the confirmation shown to the user once a run finishes.
func (s Summary) Message() string {
	return fmt.Sprintf("Process finished. Found %d pending in company and %d in bank.", s.PendingCompany, s.PendingBank)
}
