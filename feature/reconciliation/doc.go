// Package reconciliation exposes bank reconciliation runs over HTTP.
//
// A run takes the company ledger and the bank statement, either as multipart uploads, as
// objects of the storage bucket, or (company side only) as a SQL query against the
// accounting database. Both sides are loaded concurrently, matched with core/reconcile and
// rendered with core/report.
//
// # Endpoints
//
//   - POST /reconciliation: returns the pending workbook; ?publish=true also uploads it.
//   - POST /reconciliation/summary: returns the summary as JSON.
//
// Missing uploads and unknown modes answer 400, unreadable files and invalid amounts 422.
package reconciliation
