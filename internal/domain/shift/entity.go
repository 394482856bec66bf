package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftTemplate describes a reusable daily shift window. StartTime and
// EndTime are times of day on an arbitrary reference date; EndTime may be
// numerically earlier than StartTime, which denotes an overnight shift whose
// duration is the positive wraparound difference.
type ShiftTemplate struct {
	ID                     string
	CompanyID              string
	Name                   string
	StartTime              time.Time
	EndTime                time.Time
	DifferentialMultiplier decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              *time.Time
}
