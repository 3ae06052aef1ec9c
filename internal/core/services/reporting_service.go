package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/plannivo/revenue-backend/internal/core/domain"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/utils/statuses"
	"github.com/shopspring/decimal"
)

// revenueReportingService implements the RevenueReportingSvcFacade
// interface. It is purely read-side: it may observe a partially-synced
// window, which is acceptable for reporting.
type revenueReportingService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepository
	baseCurrency string
}

// NewRevenueReportingService creates the reporting service.
func NewRevenueReportingService(ledgerRepo portsrepo.LedgerRepository, baseCurrency string) portssvc.RevenueReportingSvcFacade {
	return &revenueReportingService{
		ledgerRepo:   ledgerRepo,
		baseCurrency: baseCurrency,
	}
}

// Ensure revenueReportingService implements the facade interface
var _ portssvc.RevenueReportingSvcFacade = (*revenueReportingService)(nil)

// LedgerTotals computes refund-aware totals over the window. Rows with a
// negative status are kept out of the expected totals and summed into
// RefundedTotal instead; the status breakdown reports every status.
func (s *revenueReportingService) LedgerTotals(ctx context.Context, dateStart, dateEnd time.Time) (*domain.TotalsReport, error) {
	from, to := defaultWindow(dateStart, dateEnd)

	buckets, err := s.ledgerRepo.GetServiceTotalsData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger totals data",
			slog.String("date_start", from.Format("2006-01-02")),
			slog.String("date_end", to.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to retrieve ledger totals data: %w", err)
	}

	report := &domain.TotalsReport{
		ExpectedTotal:       decimal.Zero,
		ExpectedByService:   map[string]decimal.Decimal{},
		CountsByService:     map[string]int64{},
		CommissionByService: map[string]decimal.Decimal{},
		CommissionTotal:     decimal.Zero,
		CommissionRate:      decimal.Zero,
		RefundedTotal:       decimal.Zero,
		StatusBreakdown:     []domain.StatusTotal{},
		CurrencyCode:        s.baseCurrency,
	}

	statusTotals := map[string]*domain.StatusTotal{}
	for _, b := range buckets {
		report.EntryCount += b.EntryCount

		st, ok := statusTotals[b.Status]
		if !ok {
			st = &domain.StatusTotal{Status: b.Status, Amount: decimal.Zero}
			statusTotals[b.Status] = st
		}
		st.Amount = st.Amount.Add(b.Amount)
		st.EntryCount += b.EntryCount

		if statuses.IsNegative(b.Status) {
			report.RefundedTotal = report.RefundedTotal.Add(b.Amount)
			continue
		}

		report.ExpectedTotal = report.ExpectedTotal.Add(b.Amount)
		report.CommissionTotal = report.CommissionTotal.Add(b.CommissionAmount)

		existing, ok := report.ExpectedByService[b.ServiceType]
		if !ok {
			existing = decimal.Zero
		}
		report.ExpectedByService[b.ServiceType] = existing.Add(b.Amount)

		existingCommission, ok := report.CommissionByService[b.ServiceType]
		if !ok {
			existingCommission = decimal.Zero
		}
		report.CommissionByService[b.ServiceType] = existingCommission.Add(b.CommissionAmount)

		report.CountsByService[b.ServiceType] += b.EntryCount
	}

	// Guard the divide: an empty or fully-refunded window has no rate.
	if report.ExpectedTotal.GreaterThan(decimal.Zero) {
		report.CommissionRate = report.CommissionTotal.Div(report.ExpectedTotal).Round(4)
	}

	for _, st := range statusTotals {
		report.StatusBreakdown = append(report.StatusBreakdown, *st)
	}
	sort.Slice(report.StatusBreakdown, func(i, j int) bool {
		return report.StatusBreakdown[i].Status < report.StatusBreakdown[j].Status
	})

	s.LogInfo(ctx, "Ledger totals computed",
		slog.String("date_start", from.Format("2006-01-02")),
		slog.String("date_end", to.Format("2006-01-02")),
		slog.Int64("entry_count", report.EntryCount),
		slog.String("expected_total", report.ExpectedTotal.String()))
	return report, nil
}

// ListLedgerEntries pages through ledger entries in the window.
func (s *revenueReportingService) ListLedgerEntries(ctx context.Context, dateStart, dateEnd time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	from, to := defaultWindow(dateStart, dateEnd)

	entries, token, err := s.ledgerRepo.ListEntries(ctx, from, to, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries",
			slog.String("date_start", from.Format("2006-01-02")),
			slog.String("date_end", to.Format("2006-01-02")))
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, token, nil
}
