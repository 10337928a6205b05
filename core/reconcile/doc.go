// Package reconcile matches a company ledger against a bank statement and reports
// the movements that appear on only one side.
//
// Matching does not use transaction ids. Each row is reduced to a key made of a tag and
// the amount rounded to cents, and keys are compared across sides.
//
// # Inverted Keys
//
// A company debit is recorded by the bank as a credit and the other way around, so the
// tags are inverted per side:
//
//	company  credit (VALOR ABONOS)  -> NC+amount   debit (VALOR CARGOS) -> NA+amount
//	bank     debit  (Cargo (US$))   -> NC+amount   credit (Abono (US$)) -> NA+amount
//
// When a row carries both amounts the company reads the credit first and the bank reads the
// debit first (Schema.CreditFirst). Rows with no positive amount get the SKIP key and are
// invisible to matching: they are neither matched nor pending.
//
// # Matching
//
// In the default MatchMembership mode a row is pending when its key does not occur at all on
// the other side. Duplicates on one side are all matched by a single occurrence on the other.
// MatchMultiset pairs rows one to one instead and leaves surplus duplicates pending.
//
// # Errors
//
// CleanValue returns *AmountParseError for non-numeric amount text. DeriveKeys wraps it in a
// *RowError naming the side and line, and the whole run fails: there is no per-row recovery.
//
// # Usage Example
//
//	result, err := reconcile.Reconcile(companyTable, bankTable, reconcile.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Summary.Message())
package reconcile
