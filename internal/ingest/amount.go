package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount token cannot be parsed or
// is not strictly positive. It is row-scoped: one bad amount fails only
// the record that carried it.
var ErrInvalidAmount = errors.New("invalid amount")

// NormalizeAmount converts a raw statement amount token into a strictly
// positive decimal. Statement exports mix locales even within one bank,
// so when both separators appear the one closer to the end of the token
// is taken as the decimal separator ("1.234,56" and "1,234.56" both
// come out as 1234.56). A lone comma is treated as a decimal separator.
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.TrimSpace(s)

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			// European format: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// American format: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, d)
	}
	return d, nil
}
