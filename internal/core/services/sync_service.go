package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
)

// revenueSyncService implements the RevenueSyncSvcFacade interface. It
// sequences the optional range clear and the three source adapter passes
// over a single date window; each pass flows through the merging upsert so
// overlapping or repeated runs converge to the same rows.
type revenueSyncService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	adapters   []portssvc.SourceAdapter
}

// NewRevenueSyncService creates the sync orchestrator. Adapters run in the
// order given; the conventional wiring is booking, rental, accommodation.
func NewRevenueSyncService(ledgerRepo portsrepo.LedgerRepository, adapters ...portssvc.SourceAdapter) portssvc.RevenueSyncSvcFacade {
	return &revenueSyncService{
		ledgerRepo: ledgerRepo,
		adapters:   adapters,
	}
}

// Ensure revenueSyncService implements the RevenueSyncSvcFacade interface
var _ portssvc.RevenueSyncSvcFacade = (*revenueSyncService)(nil)

// SyncRevenueLedger reconciles the ledger store for the window. Adapter
// data-quality issues never surface here; only storage failures do, logged
// with the affected window and returned to the caller.
func (s *revenueSyncService) SyncRevenueLedger(ctx context.Context, dateStart, dateEnd time.Time, truncate bool) error {
	from, to := defaultWindow(dateStart, dateEnd)
	logger := s.GetLogger(ctx).With(
		slog.String("date_start", from.Format("2006-01-02")),
		slog.String("date_end", to.Format("2006-01-02")),
	)

	if truncate {
		removed, err := s.ledgerRepo.ClearRange(ctx, from, to)
		if err != nil {
			logger.Error("Failed to clear ledger window for rebuild", slog.String("error", err.Error()))
			return fmt.Errorf("failed to clear ledger window: %w", err)
		}
		logger.Info("Cleared ledger window for full rebuild", slog.Int64("rows_removed", removed))
	}

	for _, adapter := range s.adapters {
		sourceType := string(adapter.SourceType())

		entries, err := adapter.Extract(ctx, from, to)
		if err != nil {
			logger.Error("Source extraction failed",
				slog.String("source_type", sourceType),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to extract %s entries: %w", sourceType, err)
		}
		if len(entries) == 0 {
			logger.Debug("No eligible entries in window", slog.String("source_type", sourceType))
			continue
		}

		if err := s.ledgerRepo.UpsertEntries(ctx, entries); err != nil {
			logger.Error("Ledger upsert failed",
				slog.String("source_type", sourceType),
				slog.Int("entry_count", len(entries)),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to upsert %s entries: %w", sourceType, err)
		}
		logger.Info("Synced source into ledger",
			slog.String("source_type", sourceType),
			slog.Int("entry_count", len(entries)))
	}

	return nil
}
