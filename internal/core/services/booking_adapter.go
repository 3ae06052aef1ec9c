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

// bookingAdapter projects lesson bookings into ledger entries. It is the
// only adapter that resolves instructor commission.
type bookingAdapter struct {
	BaseService
	repo         portsrepo.BookingSourceRepository
	baseCurrency string
}

// NewBookingAdapter creates the booking source adapter.
func NewBookingAdapter(repo portsrepo.BookingSourceRepository, baseCurrency string) portssvc.SourceAdapter {
	return &bookingAdapter{repo: repo, baseCurrency: baseCurrency}
}

var _ portssvc.SourceAdapter = (*bookingAdapter)(nil)

func (a *bookingAdapter) SourceType() domain.SourceType {
	return domain.SourceBooking
}

// Extract returns ledger entries for bookings that are in-window, carry an
// eligible or reversal status, and resolve to a strictly positive amount.
// Reversal rows land with their negative status so reporting can net
// them. Records failing any criterion are excluded, not errors.
func (a *bookingAdapter) Extract(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	records, err := a.repo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings for window: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(records))
	for _, b := range records {
		if !inWindow(b.BookingDate, from, to) {
			continue
		}
		status := statuses.Normalize(b.Status)
		if !statuses.BookingEligible(status) && !statuses.IsNegative(status) {
			continue
		}
		amount := resolveBookingAmount(b)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		entry := domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			SourceType:   domain.SourceBooking,
			SourceID:     b.BookingID,
			ServiceType:  domain.ServiceTypeLesson,
			ServiceID:    b.ServiceID,
			CustomerID:   b.CustomerID,
			Amount:       amount,
			CurrencyCode: a.baseCurrency,
			OccurredAt:   bookingOccurredAt(b),
			Status:       status,
			Metadata:     bookingMetadata(b),
		}
		if b.ServiceCategory != nil && *b.ServiceCategory != "" {
			entry.ServiceSubtype = b.ServiceCategory
		}

		if result := ResolveCommission(b, amount); result != nil {
			commissionType := string(result.Type)
			commissionSource := string(result.Source)
			commissionValue := result.Value
			entry.InstructorCommissionAmount = result.Amount
			entry.InstructorCommissionType = &commissionType
			entry.InstructorCommissionValue = &commissionValue
			entry.InstructorCommissionSource = &commissionSource
			entry.Metadata["commission_type"] = commissionType
			entry.Metadata["commission_value"] = result.Value.String()
			entry.Metadata["commission_source"] = commissionSource
			entry.Metadata["commission_amount"] = result.Amount.String()
		} else {
			entry.InstructorCommissionAmount = decimal.Zero
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// resolveBookingAmount applies the amount precedence chain: explicit final
// amount, then explicit base amount, then hourly rate times duration.
// Anything still non-positive excludes the booking from the ledger.
func resolveBookingAmount(b domain.BookingRecord) decimal.Decimal {
	if b.FinalAmount.GreaterThan(decimal.Zero) {
		return b.FinalAmount
	}
	if b.BaseAmount.GreaterThan(decimal.Zero) {
		return b.BaseAmount
	}
	if b.InstructorHourlyRate != nil && b.DurationHours.GreaterThan(decimal.Zero) {
		return b.InstructorHourlyRate.Mul(b.DurationHours)
	}
	return decimal.Zero
}

// bookingOccurredAt prefers the explicit completion timestamp; otherwise
// the booking date combined with the scheduled start time.
func bookingOccurredAt(b domain.BookingRecord) time.Time {
	if b.CompletedAt != nil {
		return *b.CompletedAt
	}
	day := b.BookingDate
	if b.StartTime != nil {
		if t, err := time.Parse("15:04", *b.StartTime); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func bookingMetadata(b domain.BookingRecord) domain.Metadata {
	md := domain.Metadata{
		"booking_date": b.BookingDate.Format("2006-01-02"),
	}
	if b.PaymentStatus != nil {
		md["payment_status"] = *b.PaymentStatus
	}
	if b.InstructorID != nil {
		md["instructor_id"] = *b.InstructorID
	}
	if b.InstructorHourlyRate != nil {
		md["instructor_hourly_rate"] = b.InstructorHourlyRate.String()
	}
	if b.ServiceID != nil {
		md["service_id"] = *b.ServiceID
	}
	if b.DurationHours.GreaterThan(decimal.Zero) {
		md["duration_hours"] = b.DurationHours.String()
	}
	return md
}
