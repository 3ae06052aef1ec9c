package domain

import "github.com/shopspring/decimal"

// CommissionType selects the payout formula for an instructor commission.
type CommissionType string

const (
	CommissionPercentage     CommissionType = "percentage"
	CommissionFixedPerLesson CommissionType = "fixed_per_lesson"
	CommissionFixedPerHour   CommissionType = "fixed_per_hour"
)

// CommissionSource records which policy tier supplied the resolved formula.
type CommissionSource string

const (
	CommissionSourceOverride CommissionSource = "booking_override"
	CommissionSourceService  CommissionSource = "instructor_service"
	CommissionSourceDefault  CommissionSource = "instructor_default"
)

// CommissionPolicy is one tier of the commission cascade: a formula type
// plus its value (a percentage or a fixed rate, depending on the type).
type CommissionPolicy struct {
	Type  CommissionType  `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// CommissionResult is a fully resolved commission for a single booking.
type CommissionResult struct {
	Type   CommissionType   `json:"type"`
	Value  decimal.Decimal  `json:"value"`
	Source CommissionSource `json:"source"`
	Amount decimal.Decimal  `json:"amount"`
}
