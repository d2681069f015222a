// Package ingest converts bank statement files (CSV exports and PDF
// statements) into validated expenses. Failures are isolated per file,
// per page, or per row so that one malformed record never discards the
// rest of an otherwise-successful batch.
package ingest

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarren/budget-tracker/internal/domain"
	"github.com/dmarren/budget-tracker/internal/logger"
)

// PaymentStore is the persistence collaborator. Any error it returns
// is treated as a row-scoped failure; the batch continues.
type PaymentStore interface {
	InsertPayment(ctx context.Context, amount decimal.Decimal, category, description string, date time.Time) (*domain.Expense, error)
}

// Ingestor drives one statement file through normalization and
// persistence. It is single-threaded: a file is read, iterated, and
// fully ingested before the result returns to the caller.
type Ingestor struct {
	store PaymentStore
	rules []CategoryRule
	now   func() time.Time
}

// New creates an Ingestor. A nil rules slice selects the built-in
// classifier rules.
func New(store PaymentStore, rules []CategoryRule) *Ingestor {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Ingestor{store: store, rules: rules, now: time.Now}
}

// ImportCSV imports a delimited statement export. Unreadable files and
// headers missing the amount or date column abort the whole import
// with a single file-scoped error.
func (in *Ingestor) ImportCSV(ctx context.Context, path string) *ImportResult {
	log := logger.FromContext(ctx)
	res := NewImportResult()

	header, rows, err := readCSV(path)
	if err != nil {
		res.abort(fmt.Sprintf("failed to read CSV file: %v", err))
		log.Error().Str("file", path).Err(err).Msg("CSV import aborted")
		return res
	}

	mapping, err := ResolveColumns(header, csvSynonyms)
	if err != nil {
		res.abort(fmt.Sprintf("failed to read CSV file: %v", err))
		log.Error().Str("file", path).Err(err).Msg("CSV import aborted")
		return res
	}

	for i, row := range rows {
		in.ingestRecord(ctx, res, mapping, row, fmt.Sprintf("Row %d", i+1), false)
	}

	log.Info().Str("file", path).Int("imported", res.Imported).Int("failed", res.Failed).Msg("import complete")
	return res
}

// textRowPattern matches one statement row in PDF text-fallback mode:
// ISO date, description, dollar amount. Lines that do not match are
// not statement rows and are skipped without an error entry.
var textRowPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(.+?)\s+\$([\d.]+)`)

// textMapping is the fixed field layout of a matched text-mode line.
var textMapping = ColumnMapping{FieldDate: 0, FieldDescription: 1, FieldAmount: 2}

// ImportPDF imports a PDF statement page by page. Pages with a usable
// table go through header resolution like a CSV would, except that a
// header missing amount or date skips only that page. Pages without a
// table fall back to per-line pattern matching with the category
// classifier.
func (in *Ingestor) ImportPDF(ctx context.Context, path string) *ImportResult {
	log := logger.FromContext(ctx)
	res := NewImportResult()

	pages, err := readPDF(path)
	if err != nil {
		res.abort(fmt.Sprintf("failed to read PDF: %v", err))
		log.Error().Str("file", path).Err(err).Msg("PDF import aborted")
		return res
	}

	for _, page := range pages {
		in.ingestPage(ctx, res, page)
	}

	log.Info().Str("file", path).Int("imported", res.Imported).Int("failed", res.Failed).Msg("import complete")
	return res
}

func (in *Ingestor) ingestPage(ctx context.Context, res *ImportResult, page pdfPage) {
	if page.table != nil {
		mapping, err := ResolveColumns(page.table[0], pdfSynonyms)
		if err != nil {
			res.skipPage(fmt.Sprintf("Page %d", page.number), err.Error())
			return
		}
		for i, row := range page.table[1:] {
			loc := fmt.Sprintf("Page %d Row %d", page.number, i+1)
			in.ingestRecord(ctx, res, mapping, row, loc, false)
		}
		return
	}

	for i, line := range page.lines {
		m := textRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		loc := fmt.Sprintf("Page %d Line %d", page.number, i+1)
		in.ingestRecord(ctx, res, textMapping, m[1:], loc, true)
	}
}

// ingestRecord normalizes one raw record and hands it to the store.
// Every failure on this path is row-scoped: the error is recorded
// under location and processing continues with the next record.
func (in *Ingestor) ingestRecord(ctx context.Context, res *ImportResult, mapping ColumnMapping, record []string, location string, classify bool) {
	log := logger.FromContext(ctx)

	amountTok := mapping.Cell(record, FieldAmount)
	amount, err := NormalizeAmount(amountTok)
	if err != nil {
		res.fail(location, fmt.Sprintf("invalid amount %q", amountTok))
		return
	}

	description := mapping.Cell(record, FieldDescription)
	if isMissing(description) {
		description = ""
	}

	var category string
	if classify {
		category = Classify(description, in.rules)
	} else {
		category = mapping.Cell(record, FieldCategory)
		if isMissing(category) {
			category = domain.CategoryOther
		}
	}

	dateTok := mapping.Cell(record, FieldDate)
	date, parsed := NormalizeDate(dateTok, in.now)
	if !parsed {
		res.warn(location, fmt.Sprintf("unparseable date %q, using today", dateTok))
		log.Warn().Str("location", location).Str("date", dateTok).Msg("date fallback")
	}

	exp, err := in.store.InsertPayment(ctx, amount, category, description, date)
	if err != nil {
		res.fail(location, err.Error())
		return
	}
	res.success(exp)

	log.Debug().
		Str("location", location).
		Str("amount", amount.StringFixed(2)).
		Str("category", category).
		Str("date", date.Format("2006-01-02")).
		Msg("imported row")
}

// isMissing reports an absent cell. Sources that pass through a
// dataframe-style export encode empty cells as the literal "nan".
func isMissing(s string) bool {
	return s == "" || strings.EqualFold(s, "nan")
}
