package table

import "fmt"

// MalformedInputError reports a source that cannot be read as a table,
// either because the content is not a readable spreadsheet or because the header row is missing.
type MalformedInputError struct {
	// Source names the input (file name, object key or "query").
	Source string
	// Reason describes what is wrong with the input.
	Reason string
	// Err is the underlying parser error, if any.
	Err error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Source != "" {
		msg += " " + fmt.Sprintf("%q", e.Source)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
