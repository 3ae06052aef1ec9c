package services

import (
	"context"
	"time"

	"github.com/plannivo/revenue-backend/internal/core/domain"
)

// SourceAdapter projects one transactional source into candidate ledger
// entries for a date window. Adapters are read-only against their source
// and never fail on data-quality issues; ineligible or malformed records
// are silently excluded.
type SourceAdapter interface {
	// SourceType identifies the origin this adapter covers.
	SourceType() domain.SourceType

	// Extract returns the candidate ledger entries whose activity date
	// falls inside the inclusive [from, to] window.
	Extract(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error)
}

// RevenueSyncSvcFacade defines the ledger synchronization operations.
type RevenueSyncSvcFacade interface {
	// SyncRevenueLedger reconciles the ledger store for the window. Zero
	// dateStart/dateEnd default to an effectively unbounded window. With
	// truncate the window is cleared first for a full rebuild; otherwise
	// changes merge incrementally via the upsert semantics. Re-running the
	// same window is always safe and convergent.
	SyncRevenueLedger(ctx context.Context, dateStart, dateEnd time.Time, truncate bool) error
}

// RevenueReportingSvcFacade defines the read-side reporting operations.
type RevenueReportingSvcFacade interface {
	// LedgerTotals computes refund-aware totals over the window.
	LedgerTotals(ctx context.Context, dateStart, dateEnd time.Time) (*domain.TotalsReport, error)

	// ListLedgerEntries pages through ledger entries in the window.
	ListLedgerEntries(ctx context.Context, dateStart, dateEnd time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// ServiceContainer holds all the service facades for dependency injection.
type ServiceContainer struct {
	RevenueSync      RevenueSyncSvcFacade
	RevenueReporting RevenueReportingSvcFacade
}
