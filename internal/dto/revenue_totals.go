package dto

import (
	"github.com/plannivo/revenue-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatusTotalResponse is one row of the status breakdown.
type StatusTotalResponse struct {
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	EntryCount int64           `json:"entryCount"`
}

// LedgerTotalsResponse is the refund-aware totals report for a window.
type LedgerTotalsResponse struct {
	DateStart           string                     `json:"dateStart,omitempty"`
	DateEnd             string                     `json:"dateEnd,omitempty"`
	ExpectedTotal       decimal.Decimal            `json:"expectedTotal"`
	ExpectedByService   map[string]decimal.Decimal `json:"expectedByService"`
	CountsByService     map[string]int64           `json:"countsByService"`
	CommissionByService map[string]decimal.Decimal `json:"commissionByService"`
	CommissionTotal     decimal.Decimal            `json:"commissionTotal"`
	CommissionRate      decimal.Decimal            `json:"commissionRate"`
	EntryCount          int64                      `json:"entryCount"`
	RefundedTotal       decimal.Decimal            `json:"refundedTotal"`
	StatusBreakdown     []StatusTotalResponse      `json:"statusBreakdown"`
	Currency            string                     `json:"currency"`
}

// ToLedgerTotalsResponse converts a domain totals report to a DTO response
func ToLedgerTotalsResponse(report domain.TotalsReport, dateStart, dateEnd string) LedgerTotalsResponse {
	breakdown := make([]StatusTotalResponse, len(report.StatusBreakdown))
	for i, st := range report.StatusBreakdown {
		breakdown[i] = StatusTotalResponse{
			Status:     st.Status,
			Amount:     st.Amount,
			EntryCount: st.EntryCount,
		}
	}

	return LedgerTotalsResponse{
		DateStart:           dateStart,
		DateEnd:             dateEnd,
		ExpectedTotal:       report.ExpectedTotal,
		ExpectedByService:   report.ExpectedByService,
		CountsByService:     report.CountsByService,
		CommissionByService: report.CommissionByService,
		CommissionTotal:     report.CommissionTotal,
		CommissionRate:      report.CommissionRate,
		EntryCount:          report.EntryCount,
		RefundedTotal:       report.RefundedTotal,
		StatusBreakdown:     breakdown,
		Currency:            report.CurrencyCode,
	}
}

// ListLedgerEntriesResponse is a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []domain.LedgerEntry `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}
