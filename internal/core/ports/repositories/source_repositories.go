package repositories

import (
	"context"
	"time"

	"github.com/plannivo/revenue-backend/internal/core/domain"
)

// Source repositories are read-only windows over the transactional tables
// owned by the booking platform. They apply only the coarse date filter in
// SQL; status, amount, and precise window eligibility are decided by the
// adapters so the rules stay unit-testable.

// BookingSourceRepository reads lesson bookings with their commission tier
// candidates joined in.
type BookingSourceRepository interface {
	// ListInRange returns soft-undeleted bookings whose booking date falls
	// inside the inclusive [from, to] window.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.BookingRecord, error)
}

// RentalSourceRepository reads equipment rentals.
type RentalSourceRepository interface {
	// ListInRange returns rentals whose best-available end-or-start date
	// falls inside the inclusive [from, to] window.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.RentalRecord, error)
}

// AccommodationSourceRepository reads accommodation stays with the unit
// type resolved via the unit reference.
type AccommodationSourceRepository interface {
	// ListInRange returns stays whose best-available checkout-or-checkin
	// date falls inside the inclusive [from, to] window.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.AccommodationRecord, error)
}
