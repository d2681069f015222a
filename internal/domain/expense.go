package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents one validated expense produced by the ingestion
// pipeline. This is a domain struct, not a storage row; the persistence
// collaborator assigns the ID and normalizes the category case.
type Expense struct {
	ID          string          // assigned by the store on insert
	Amount      decimal.Decimal // strictly positive
	Category    string
	Description string
	Date        time.Time
}

// Categories the fallback classifier can produce. Explicit category
// columns in a source file may carry free text beyond this set.
const (
	CategoryGroceries     = "Groceries"
	CategoryEntertainment = "Entertainment"
	CategoryElectronics   = "Electronics"
	CategoryOther         = "Other"
)
