package ingest

import (
	"fmt"
	"strings"
)

// Canonical field names every source column is resolved to.
const (
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldDate        = "date"
)

var canonicalFields = []string{FieldAmount, FieldCategory, FieldDescription, FieldDate}

// csvSynonyms covers the English and Spanish header variants seen in
// CSV exports.
var csvSynonyms = map[string][]string{
	FieldAmount:      {"Amount", "Monto", "Value", "Valor"},
	FieldCategory:    {"Category", "Categoría", "Type", "Tipo"},
	FieldDescription: {"Description", "Descripción", "Detail", "Detalle"},
	FieldDate:        {"Date", "Fecha", "Transaction Date", "Fecha Transacción"},
}

// pdfSynonyms is the restricted set matched against table headers
// extracted from PDF pages.
var pdfSynonyms = map[string][]string{
	FieldAmount:      {"amount", "value", "debit", "credit"},
	FieldCategory:    {"category", "type"},
	FieldDescription: {"description", "details"},
	FieldDate:        {"date", "transaction date"},
}

// ColumnMapping maps a canonical field name to its column index in the
// raw source. Built once per file (CSV) or per page (PDF).
type ColumnMapping map[string]int

// Cell extracts the named field from a raw record. Rows shorter than
// the header resolve to an empty token.
func (m ColumnMapping) Cell(record []string, field string) string {
	idx, ok := m[field]
	if !ok || idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// MissingColumnsError reports which mandatory canonical fields could
// not be resolved from a header. For CSV sources it aborts the whole
// file; for PDF sources it skips only the offending page.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %v", e.Missing)
}

// ResolveColumns maps a header row onto the canonical field set using
// the given synonym table. Headers are trimmed and compared
// case-insensitively; per field, the first synonym with a matching
// header wins. amount and date must resolve, category and description
// are optional.
func ResolveColumns(header []string, synonyms map[string][]string) (ColumnMapping, error) {
	trimmed := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.ToLower(strings.TrimSpace(h))
	}

	mapping := make(ColumnMapping)
	for _, field := range canonicalFields {
	nextField:
		for _, syn := range synonyms[field] {
			for i, h := range trimmed {
				if h == strings.ToLower(syn) {
					mapping[field] = i
					break nextField
				}
			}
		}
	}

	var missing []string
	for _, field := range []string{FieldAmount, FieldDate} {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return mapping, nil
}
