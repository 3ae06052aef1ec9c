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

// rentalAdapter projects equipment rentals into ledger entries. Rentals
// carry no per-row currency in the source, so every entry is stamped with
// the business base currency.
type rentalAdapter struct {
	BaseService
	repo         portsrepo.RentalSourceRepository
	baseCurrency string
}

// NewRentalAdapter creates the rental source adapter.
func NewRentalAdapter(repo portsrepo.RentalSourceRepository, baseCurrency string) portssvc.SourceAdapter {
	return &rentalAdapter{repo: repo, baseCurrency: baseCurrency}
}

var _ portssvc.SourceAdapter = (*rentalAdapter)(nil)

func (a *rentalAdapter) SourceType() domain.SourceType {
	return domain.SourceRental
}

func (a *rentalAdapter) Extract(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	records, err := a.repo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read rentals for window: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(records))
	for _, r := range records {
		status := statuses.Normalize(r.Status)
		if !statuses.RentalEligible(status) && !statuses.IsNegative(status) {
			continue
		}
		if r.TotalPrice.LessThanOrEqual(decimal.Zero) {
			continue
		}
		occurredAt := rentalOccurredAt(r)
		if !inWindow(occurredAt, from, to) {
			continue
		}

		md := domain.Metadata{
			"rental_date": r.RentalDate.Format("2006-01-02"),
		}
		if r.PaymentStatus != nil {
			md["payment_status"] = *r.PaymentStatus
		}
		if len(r.EquipmentIDs) > 0 {
			md["equipment_ids"] = r.EquipmentIDs
		}

		entries = append(entries, domain.LedgerEntry{
			EntryID:                    uuid.NewString(),
			SourceType:                 domain.SourceRental,
			SourceID:                   r.RentalID,
			ServiceType:                domain.ServiceTypeRental,
			CustomerID:                 r.CustomerID,
			Amount:                     r.TotalPrice,
			CurrencyCode:               a.baseCurrency,
			OccurredAt:                 occurredAt,
			Status:                     status,
			Metadata:                   md,
			InstructorCommissionAmount: decimal.Zero,
		})
	}
	return entries, nil
}

// rentalOccurredAt prefers the return timestamp, then the start, then the
// nominal rental date.
func rentalOccurredAt(r domain.RentalRecord) time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	if r.StartDate != nil {
		return *r.StartDate
	}
	return r.RentalDate
}
