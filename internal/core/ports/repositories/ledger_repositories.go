package repositories

import (
	"context"
	"time"

	"github.com/plannivo/revenue-backend/internal/core/domain"
)

// LedgerRepository defines the write and read operations on the revenue
// ledger store.
type LedgerRepository interface {
	// UpsertEntries writes candidate entries keyed by (sourceType,
	// sourceID). New keys are inserted with recordedAt = updatedAt = now;
	// existing rows have every scalar field replaced, updatedAt refreshed,
	// and metadata merged key-by-key with candidate keys winning.
	// recordedAt is never touched after first insert. The whole batch is
	// applied inside one transaction.
	UpsertEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// ClearRange deletes every ledger row whose occurrence date falls
	// inside the inclusive [from, to] window, across all source types.
	// Returns the number of rows removed.
	ClearRange(ctx context.Context, from, to time.Time) (int64, error)

	// GetServiceTotalsData returns per (serviceType, status) sums and
	// counts for rows whose occurrence date is inside the window.
	GetServiceTotalsData(ctx context.Context, from, to time.Time) ([]domain.ServiceStatusTotal, error)

	// FindEntryBySource retrieves a single ledger entry by its natural key.
	FindEntryBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a window of ledger entries ordered by
	// occurrence time descending, with token-based cursor pagination.
	ListEntries(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	LedgerRepo        LedgerRepository
	BookingRepo       BookingSourceRepository
	RentalRepo        RentalSourceRepository
	AccommodationRepo AccommodationSourceRepository
}
