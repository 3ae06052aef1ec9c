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

type PgxRentalSourceRepository struct {
	BaseRepository
}

// newPgxRentalSourceRepository creates a read-only repository over the
// platform's rentals table.
func newPgxRentalSourceRepository(pool *pgxpool.Pool) portsrepo.RentalSourceRepository {
	return &PgxRentalSourceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRentalSourceRepository implements the port interface
var _ portsrepo.RentalSourceRepository = (*PgxRentalSourceRepository)(nil)

// ListInRange returns rentals whose best-available end-or-start date falls
// inside the inclusive window.
func (r *PgxRentalSourceRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.RentalRecord, error) {
	query := `
		SELECT rental_id, status, total_price, rental_date, start_date, end_date,
		       equipment_ids, payment_status, customer_id
		FROM rentals
		WHERE deleted_at IS NULL
		  AND COALESCE(end_date, start_date, rental_date)::date BETWEEN $1::date AND $2::date
		ORDER BY rental_date;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rentals for window", err)
	}
	defer rows.Close()

	records := []domain.RentalRecord{}
	for rows.Next() {
		var rec domain.RentalRecord
		var paymentStatus, customerID sql.NullString

		if err := rows.Scan(
			&rec.RentalID,
			&rec.Status,
			&rec.TotalPrice,
			&rec.RentalDate,
			&rec.StartDate,
			&rec.EndDate,
			&rec.EquipmentIDs,
			&paymentStatus,
			&customerID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rental row", err)
		}

		rec.PaymentStatus = nullableString(paymentStatus)
		rec.CustomerID = nullableString(customerID)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rental rows", err)
	}

	return records, nil
}
