// Package report renders a reconciliation result as a downloadable xlsx workbook.
//
// The workbook holds two sheets, PENDING_COMPANY and PENDING_BANK. Each sheet starts with the
// side's original (normalized) header followed by its pending rows in source order. Numeric
// cells are written as numbers, dates as date-formatted serials and text as strings, so the
// sheets can be filtered and summed like the original exports.
//
// # Usage
//
//	data, err := report.Bytes(result)
//	c.Set(fiber.HeaderContentType, report.ContentType)
//	c.Attachment(report.FileName)
//	return c.Send(data)
package report
