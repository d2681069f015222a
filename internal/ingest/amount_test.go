package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "european thousands and decimal",
			raw:  "1.234,56",
			want: "1234.56",
		},
		{
			name: "american thousands and decimal",
			raw:  "1,234.56",
			want: "1234.56",
		},
		{
			name: "dollar symbol",
			raw:  "$50",
			want: "50",
		},
		{
			name: "euro symbol with european format",
			raw:  "1.234,56 €",
			want: "1234.56",
		},
		{
			name: "lone comma is decimal separator",
			raw:  "12,3",
			want: "12.3",
		},
		{
			name: "plain decimal",
			raw:  "15.00",
			want: "15",
		},
		{
			name: "surrounding whitespace",
			raw:  "  42.50  ",
			want: "42.5",
		},
		{
			name:    "negative is rejected",
			raw:     "-5",
			wantErr: true,
		},
		{
			name:    "zero is rejected",
			raw:     "0",
			wantErr: true,
		},
		{
			name:    "negative european format is rejected",
			raw:     "-12.3",
			wantErr: true,
		},
		{
			name:    "not a number",
			raw:     "abc",
			wantErr: true,
		},
		{
			name:    "empty token",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeAmount(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("NormalizeAmount(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}
