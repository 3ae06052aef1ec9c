package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plannivo/revenue-backend/internal/core/domain"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/utils/statuses"
	"github.com/shopspring/decimal"
)

// accommodationAdapter projects accommodation stays into ledger entries.
// Commission fields stay at their zero defaults; commission is a
// booking-only concept.
type accommodationAdapter struct {
	BaseService
	repo         portsrepo.AccommodationSourceRepository
	baseCurrency string
}

// NewAccommodationAdapter creates the accommodation source adapter.
func NewAccommodationAdapter(repo portsrepo.AccommodationSourceRepository, baseCurrency string) portssvc.SourceAdapter {
	return &accommodationAdapter{repo: repo, baseCurrency: baseCurrency}
}

var _ portssvc.SourceAdapter = (*accommodationAdapter)(nil)

func (a *accommodationAdapter) SourceType() domain.SourceType {
	return domain.SourceAccommodation
}

func (a *accommodationAdapter) Extract(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	records, err := a.repo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read accommodation stays for window: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(records))
	for _, s := range records {
		status := statuses.Normalize(s.Status)
		if !statuses.AccommodationEligible(status) && !statuses.IsNegative(status) {
			continue
		}
		if s.TotalPrice.LessThanOrEqual(decimal.Zero) {
			continue
		}
		occurredAt, ok := stayOccurredAt(s)
		if !ok || !inWindow(occurredAt, from, to) {
			continue
		}

		md := domain.Metadata{}
		if s.PaymentStatus != nil {
			md["payment_status"] = *s.PaymentStatus
		}
		if s.UnitID != nil {
			md["unit_id"] = *s.UnitID
		}
		if s.GuestCount > 0 {
			md["guest_count"] = s.GuestCount
		}
		if s.CheckIn != nil {
			md["check_in"] = s.CheckIn.Format("2006-01-02")
		}

		entry := domain.LedgerEntry{
			EntryID:                    uuid.NewString(),
			SourceType:                 domain.SourceAccommodation,
			SourceID:                   s.StayID,
			ServiceType:                domain.ServiceTypeAccommodation,
			ServiceID:                  s.UnitID,
			CustomerID:                 s.CustomerID,
			Amount:                     s.TotalPrice,
			CurrencyCode:               a.baseCurrency,
			OccurredAt:                 occurredAt,
			Status:                     status,
			Metadata:                   md,
			InstructorCommissionAmount: decimal.Zero,
		}
		if s.UnitType != nil && *s.UnitType != "" {
			entry.ServiceSubtype = s.UnitType
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// stayOccurredAt prefers the checkout timestamp over the checkin. A stay
// with neither is malformed and excluded.
func stayOccurredAt(s domain.AccommodationRecord) (time.Time, bool) {
	if s.CheckOut != nil {
		return *s.CheckOut, true
	}
	if s.CheckIn != nil {
		return *s.CheckIn, true
	}
	return time.Time{}, false
}
