package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source records are the projections the source repositories hand to the
// adapters. Nullable source columns and foreign references that failed to
// resolve surface here as nil pointers; the adapters degrade gracefully
// instead of erroring.

// BookingRecord is a lesson booking together with the three commission
// policy tier candidates that apply to it.
type BookingRecord struct {
	BookingID     string
	BookingDate   time.Time
	StartTime     *string // "HH:MM", combined with BookingDate when no completion timestamp exists
	CompletedAt   *time.Time
	Status        string
	FinalAmount   decimal.Decimal
	BaseAmount    decimal.Decimal
	DurationHours decimal.Decimal
	CustomerID    *string
	PaymentStatus *string

	ServiceID       *string
	ServiceCategory *string

	InstructorID         *string
	InstructorHourlyRate *decimal.Decimal

	// Commission tiers in precedence order: booking-level override,
	// instructor x service policy, instructor-wide default.
	OverridePolicy *CommissionPolicy
	ServicePolicy  *CommissionPolicy
	DefaultPolicy  *CommissionPolicy
}

// RentalRecord is an equipment rental. Rentals carry no per-row currency;
// the adapter stamps the business base currency.
type RentalRecord struct {
	RentalID      string
	Status        string
	TotalPrice    decimal.Decimal
	RentalDate    time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	EquipmentIDs  []string
	PaymentStatus *string
	CustomerID    *string
}

// AccommodationRecord is an accommodation stay. UnitType is resolved via
// the unit foreign reference and is nil when the unit no longer exists.
type AccommodationRecord struct {
	StayID        string
	Status        string
	TotalPrice    decimal.Decimal
	CheckIn       *time.Time
	CheckOut      *time.Time
	UnitID        *string
	UnitType      *string
	GuestCount    int
	PaymentStatus *string
	CustomerID    *string
}
