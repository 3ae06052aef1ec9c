package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies which transactional source produced a ledger entry.
type SourceType string

const (
	SourceBooking       SourceType = "booking"
	SourceRental        SourceType = "rental"
	SourceAccommodation SourceType = "accommodation"
)

// Service types recorded on ledger rows. Bookings always materialize as
// "lesson"; the other two match their source names.
const (
	ServiceTypeLesson        = "lesson"
	ServiceTypeRental        = "rental"
	ServiceTypeAccommodation = "accommodation"
)

// Metadata is the open key/value bag carried on every ledger entry.
// On re-sync it is merged key-by-key with the stored bag, never replaced.
type Metadata map[string]any

// LedgerEntry is one materialized, mergeable record representing a single
// completed economic transaction from any of the three sources.
// (SourceType, SourceID) is the natural key: at most one entry per pair.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"`
	SourceType     SourceType      `json:"sourceType"`
	SourceID       string          `json:"sourceID"`
	ServiceType    string          `json:"serviceType"`
	ServiceSubtype *string         `json:"serviceSubtype,omitempty"`
	ServiceID      *string         `json:"serviceID,omitempty"`
	CustomerID     *string         `json:"customerID,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Status         string          `json:"status"`
	Metadata       Metadata        `json:"metadata"`

	// Commission fields are populated for booking entries only; rental and
	// accommodation rows keep the zero/nil defaults.
	InstructorCommissionAmount decimal.Decimal  `json:"instructorCommissionAmount"`
	InstructorCommissionType   *string          `json:"instructorCommissionType,omitempty"`
	InstructorCommissionValue  *decimal.Decimal `json:"instructorCommissionValue,omitempty"`
	InstructorCommissionSource *string          `json:"instructorCommissionSource,omitempty"`

	RecordedAt time.Time `json:"recordedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
