package ingest

import "github.com/dmarren/budget-tracker/internal/domain"

// ErrorScope is the granularity at which a failure aborts processing.
type ErrorScope string

const (
	// ScopeFile aborts the whole import (unreadable file, missing
	// mandatory CSV columns).
	ScopeFile ErrorScope = "file"
	// ScopePage skips one PDF page; the remaining pages continue.
	ScopePage ErrorScope = "page"
	// ScopeRow skips one record; the batch continues.
	ScopeRow ErrorScope = "row"
)

// ImportError is one structured entry in an ImportResult. Location is
// the positional identifier ("Row 2", "Page 1 Row 3", "Page 2 Line 7");
// file-scoped errors carry no location.
type ImportError struct {
	Scope    ErrorScope
	Location string
	Message  string
}

// String renders the error the way the import summary shows it.
func (e ImportError) String() string {
	if e.Location == "" {
		return e.Message
	}
	return e.Location + ": " + e.Message
}

// ImportResult accumulates the outcome of one file import. Records and
// Errors preserve source order: row order for CSV, page-then-row or
// page-then-line order for PDF.
type ImportResult struct {
	Imported int
	Failed   int
	Errors   []ImportError
	Warnings []ImportError
	Records  []*domain.Expense
}

// NewImportResult returns an empty result ready to accumulate.
func NewImportResult() *ImportResult {
	return &ImportResult{}
}

// ErrorStrings renders all errors in order, for the presentation layer.
func (r *ImportResult) ErrorStrings() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.String()
	}
	return out
}

func (r *ImportResult) success(exp *domain.Expense) {
	r.Imported++
	r.Records = append(r.Records, exp)
}

func (r *ImportResult) fail(location, message string) {
	r.Failed++
	r.Errors = append(r.Errors, ImportError{Scope: ScopeRow, Location: location, Message: message})
}

// skipPage records a page-scoped error without touching the Failed
// counter: the page's rows were never individually examined.
func (r *ImportResult) skipPage(location, message string) {
	r.Errors = append(r.Errors, ImportError{Scope: ScopePage, Location: location, Message: message})
}

// abort records a file-scoped error. Imported and Failed stay at their
// initial values, so the caller can tell a dead file from an empty one
// by the single top-level error entry.
func (r *ImportResult) abort(message string) {
	r.Errors = append(r.Errors, ImportError{Scope: ScopeFile, Message: message})
}

func (r *ImportResult) warn(location, message string) {
	r.Warnings = append(r.Warnings, ImportError{Scope: ScopeRow, Location: location, Message: message})
}
