package pgsql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plannivo/revenue-backend/internal/apperrors"
	"github.com/plannivo/revenue-backend/internal/core/domain"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
)

type PgxAccommodationSourceRepository struct {
	BaseRepository
}

// newPgxAccommodationSourceRepository creates a read-only repository over
// the platform's accommodation tables.
func newPgxAccommodationSourceRepository(pool *pgxpool.Pool) portsrepo.AccommodationSourceRepository {
	return &PgxAccommodationSourceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccommodationSourceRepository implements the port interface
var _ portsrepo.AccommodationSourceRepository = (*PgxAccommodationSourceRepository)(nil)

// ListInRange returns stays whose best-available checkout-or-checkin date
// falls inside the inclusive window. The unit type resolves via a LEFT
// JOIN so a deleted unit degrades the subtype to NULL.
func (r *PgxAccommodationSourceRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.AccommodationRecord, error) {
	query := `
		SELECT a.stay_id, a.status, a.total_price, a.check_in, a.check_out,
		       a.unit_id, u.unit_type, a.guest_count, a.payment_status, a.customer_id
		FROM accommodation_stays a
		LEFT JOIN accommodation_units u ON u.unit_id = a.unit_id
		WHERE COALESCE(a.check_out, a.check_in)::date BETWEEN $1::date AND $2::date
		ORDER BY COALESCE(a.check_out, a.check_in);
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accommodation stays for window", err)
	}
	defer rows.Close()

	records := []domain.AccommodationRecord{}
	for rows.Next() {
		var rec domain.AccommodationRecord
		var unitID, unitType, paymentStatus, customerID sql.NullString
		var guestCount sql.NullInt64

		if err := rows.Scan(
			&rec.StayID,
			&rec.Status,
			&rec.TotalPrice,
			&rec.CheckIn,
			&rec.CheckOut,
			&unitID,
			&unitType,
			&guestCount,
			&paymentStatus,
			&customerID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan accommodation stay row", err)
		}

		rec.UnitID = nullableString(unitID)
		rec.UnitType = nullableString(unitType)
		if guestCount.Valid {
			rec.GuestCount = int(guestCount.Int64)
		}
		rec.PaymentStatus = nullableString(paymentStatus)
		rec.CustomerID = nullableString(customerID)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating accommodation stay rows", err)
	}

	return records, nil
}
