package reconcile

import (
	"bank-reconciler/core/table"

	"github.com/shopspring/decimal"
)

// Reconcile derives the keys of both sides and returns their pending rows.
// Any bad amount aborts the run; no partial result is returned.
func Reconcile(company, bank *table.Table, opts Options) (*Result, error) {
	companyKeys, err := DeriveKeys(CompanySchema, company)
	if err != nil {
		return nil, err
	}

	bankKeys, err := DeriveKeys(BankSchema, bank)
	if err != nil {
		return nil, err
	}

	return Match(Annotated{Table: company, Keys: companyKeys}, Annotated{Table: bank, Keys: bankKeys}, opts), nil
}

// Match computes the rows of each side whose key has no counterpart on the other side.
// SKIP rows are excluded from both key populations and are never pending.
// Output keeps the original row order of each side.
func Match(company, bank Annotated, opts Options) *Result {
	mode := opts.Mode

	var pendingCompany, pendingBank []int
	switch mode {
	case MatchMultiset:
		pendingCompany = unpaired(company.Keys, countKeys(bank.Keys))
		pendingBank = unpaired(bank.Keys, countKeys(company.Keys))
	default:
		// Unset and unknown modes match by membership and are reported as such
		mode = MatchMembership
		pendingCompany = absent(company.Keys, countKeys(bank.Keys))
		pendingBank = absent(bank.Keys, countKeys(company.Keys))
	}

	companySkipped := countSkipped(company.Keys)
	bankSkipped := countSkipped(bank.Keys)

	return &Result{
		PendingCompany: company.Table.Subset(pendingCompany),
		PendingBank:    bank.Table.Subset(pendingBank),
		Summary: Summary{
			Mode:                 mode,
			CompanyRows:          len(company.Keys),
			BankRows:             len(bank.Keys),
			CompanySkipped:       companySkipped,
			BankSkipped:          bankSkipped,
			MatchedCompany:       len(company.Keys) - companySkipped - len(pendingCompany),
			MatchedBank:          len(bank.Keys) - bankSkipped - len(pendingBank),
			PendingCompany:       len(pendingCompany),
			PendingBank:          len(pendingBank),
			PendingCompanyAmount: sumAmounts(company.Keys, pendingCompany),
			PendingBankAmount:    sumAmounts(bank.Keys, pendingBank),
		},
	}
}

// countKeys builds the key multiset of a side, without SKIP keys.
func countKeys(keys []Key) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		if k.IsSkip() {
			continue
		}
		counts[k.String()]++
	}
	return counts
}

// absent returns the positions of keys that never occur in other.
func absent(keys []Key, other map[string]int) []int {
	var pending []int
	for i, k := range keys {
		if k.IsSkip() {
			continue
		}
		if other[k.String()] == 0 {
			pending = append(pending, i)
		}
	}
	return pending
}

// unpaired consumes one occurrence of other per key and returns the positions left over.
func unpaired(keys []Key, other map[string]int) []int {
	var pending []int
	for i, k := range keys {
		if k.IsSkip() {
			continue
		}
		s := k.String()
		if other[s] > 0 {
			other[s]--
			continue
		}
		pending = append(pending, i)
	}
	return pending
}

func countSkipped(keys []Key) int {
	n := 0
	for _, k := range keys {
		if k.IsSkip() {
			n++
		}
	}
	return n
}

func sumAmounts(keys []Key, positions []int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(keys[p].Amount)
	}
	return total
}
