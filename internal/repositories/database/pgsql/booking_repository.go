package pgsql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plannivo/revenue-backend/internal/apperrors"
	"github.com/plannivo/revenue-backend/internal/core/domain"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxBookingSourceRepository struct {
	BaseRepository
}

// newPgxBookingSourceRepository creates a read-only repository over the
// platform's bookings tables.
func newPgxBookingSourceRepository(pool *pgxpool.Pool) portsrepo.BookingSourceRepository {
	return &PgxBookingSourceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBookingSourceRepository implements the port interface
var _ portsrepo.BookingSourceRepository = (*PgxBookingSourceRepository)(nil)

// ListInRange returns soft-undeleted bookings whose booking date falls
// inside the inclusive window, with the three commission tier candidates
// joined in. LEFT JOINs keep bookings whose instructor or service has been
// deleted; those references degrade to NULL instead of dropping the row.
func (r *PgxBookingSourceRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.BookingRecord, error) {
	query := `
		SELECT b.booking_id, b.booking_date, b.start_time, b.completed_at, b.status,
		       b.final_amount, b.base_amount, b.duration_hours, b.customer_id, b.payment_status,
		       b.service_id, s.category,
		       b.instructor_id, i.hourly_rate,
		       b.commission_override_type, b.commission_override_value,
		       isc.commission_type, isc.commission_value,
		       i.default_commission_type, i.default_commission_value
		FROM bookings b
		LEFT JOIN services s ON s.service_id = b.service_id
		LEFT JOIN instructors i ON i.instructor_id = b.instructor_id
		LEFT JOIN instructor_service_commissions isc
		       ON isc.instructor_id = b.instructor_id AND isc.service_id = b.service_id
		WHERE b.deleted_at IS NULL
		  AND b.booking_date::date BETWEEN $1::date AND $2::date
		ORDER BY b.booking_date;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bookings for window", err)
	}
	defer rows.Close()

	records := []domain.BookingRecord{}
	for rows.Next() {
		var b domain.BookingRecord
		var startTime, customerID, paymentStatus sql.NullString
		var serviceID, serviceCategory, instructorID sql.NullString
		var completedAt *time.Time
		var hourlyRate *decimal.Decimal
		var overrideType, serviceType, defaultType sql.NullString
		var overrideValue, serviceValue, defaultValue *decimal.Decimal

		if err := rows.Scan(
			&b.BookingID,
			&b.BookingDate,
			&startTime,
			&completedAt,
			&b.Status,
			&b.FinalAmount,
			&b.BaseAmount,
			&b.DurationHours,
			&customerID,
			&paymentStatus,
			&serviceID,
			&serviceCategory,
			&instructorID,
			&hourlyRate,
			&overrideType,
			&overrideValue,
			&serviceType,
			&serviceValue,
			&defaultType,
			&defaultValue,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan booking row", err)
		}

		b.StartTime = nullableString(startTime)
		b.CompletedAt = completedAt
		b.CustomerID = nullableString(customerID)
		b.PaymentStatus = nullableString(paymentStatus)
		b.ServiceID = nullableString(serviceID)
		b.ServiceCategory = nullableString(serviceCategory)
		b.InstructorID = nullableString(instructorID)
		b.InstructorHourlyRate = hourlyRate
		b.OverridePolicy = commissionPolicy(overrideType, overrideValue)
		b.ServicePolicy = commissionPolicy(serviceType, serviceValue)
		b.DefaultPolicy = commissionPolicy(defaultType, defaultValue)

		records = append(records, b)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating booking rows", err)
	}

	return records, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// commissionPolicy builds a tier candidate from its nullable columns.
// A tier needs both a type and a value to count.
func commissionPolicy(policyType sql.NullString, value *decimal.Decimal) *domain.CommissionPolicy {
	if !policyType.Valid || policyType.String == "" || value == nil {
		return nil
	}
	return &domain.CommissionPolicy{
		Type:  domain.CommissionType(policyType.String),
		Value: *value,
	}
}
