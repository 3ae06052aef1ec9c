package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the revenue_ledger_entries table.
// (SourceType, SourceID) carries a uniqueness constraint; the upsert
// merges Metadata server-side instead of replacing it.
type LedgerEntry struct {
	EntryID        string           `json:"entryID"`
	SourceType     string           `json:"sourceType"`
	SourceID       string           `json:"sourceID"`
	ServiceType    string           `json:"serviceType"`
	ServiceSubtype *string          `json:"serviceSubtype"`
	ServiceID      *string          `json:"serviceID"`
	CustomerID     *string          `json:"customerID"`
	Amount         decimal.Decimal  `json:"amount"`
	CurrencyCode   string           `json:"currencyCode"`
	OccurredAt     time.Time        `json:"occurredAt"`
	Status         string           `json:"status"`
	Metadata       map[string]any   `json:"metadata"`
	CommissionAmt  decimal.Decimal  `json:"instructorCommissionAmount"`
	CommissionType *string          `json:"instructorCommissionType"`
	CommissionVal  *decimal.Decimal `json:"instructorCommissionValue"`
	CommissionSrc  *string          `json:"instructorCommissionSource"`
	RecordedAt     time.Time        `json:"recordedAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
