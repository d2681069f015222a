package ingest

import (
	"strings"
	"time"
)

// dateLayouts are tried in priority order. The first layout that parses
// the trimmed token wins; ambiguous tokens such as "03/04/2025" therefore
// resolve day-first.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
}

// NormalizeDate parses a raw date token against the known statement
// layouts. When no layout matches it falls back to now() and reports
// ok=false so the caller can surface the substitution as a warning;
// date parsing never fails a record outright.
func NormalizeDate(raw string, now func() time.Time) (date time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return now(), false
}
