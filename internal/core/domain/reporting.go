package domain

import (
	"github.com/shopspring/decimal"
)

// ServiceStatusTotal is one aggregation bucket from the ledger store:
// sums and counts for a (serviceType, status) pair inside a window.
type ServiceStatusTotal struct {
	ServiceType      string          `json:"serviceType"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	EntryCount       int64           `json:"entryCount"`
}

// StatusTotal is one row of the full status breakdown, negative statuses
// included.
type StatusTotal struct {
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	EntryCount int64           `json:"entryCount"`
}

// TotalsReport is the refund-aware view over a ledger window. Expected
// totals exclude negative-status rows; RefundedTotal sums exactly those
// excluded amounts.
type TotalsReport struct {
	ExpectedTotal       decimal.Decimal            `json:"expectedTotal"`
	ExpectedByService   map[string]decimal.Decimal `json:"expectedByService"`
	CountsByService     map[string]int64           `json:"countsByService"`
	CommissionByService map[string]decimal.Decimal `json:"commissionByService"`
	CommissionTotal     decimal.Decimal            `json:"commissionTotal"`
	CommissionRate      decimal.Decimal            `json:"commissionRate"`
	EntryCount          int64                      `json:"entryCount"`
	RefundedTotal       decimal.Decimal            `json:"refundedTotal"`
	StatusBreakdown     []StatusTotal              `json:"statusBreakdown"`
	CurrencyCode        string                     `json:"currencyCode"`
}
