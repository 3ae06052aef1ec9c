package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plannivo/revenue-backend/internal/apperrors"
	"github.com/plannivo/revenue-backend/internal/core/domain"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	"github.com/plannivo/revenue-backend/internal/models"
	"github.com/plannivo/revenue-backend/internal/utils/mapping"
	"github.com/plannivo/revenue-backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the revenue ledger store.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerColumns = `
	entry_id, source_type, source_id, service_type, service_subtype, service_id, customer_id,
	amount, currency_code, occurred_at, status, metadata,
	instructor_commission_amount, instructor_commission_type, instructor_commission_value, instructor_commission_source,
	recorded_at, updated_at`

// UpsertEntries writes candidate entries inside a single transaction.
// The ON CONFLICT clause enforces the natural-key invariant: two concurrent
// syncs racing on the same (source_type, source_id) converge to one row.
// jsonb concatenation merges metadata server-side, so keys written by other
// metadata producers survive a re-sync while resynced keys win on overlap;
// recorded_at is set once and never updated.
func (r *PgxLedgerRepository) UpsertEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	now := time.Now().UTC()

	upsertQuery := `
		INSERT INTO revenue_ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (source_type, source_id) DO UPDATE SET
			service_type = EXCLUDED.service_type,
			service_subtype = EXCLUDED.service_subtype,
			service_id = EXCLUDED.service_id,
			customer_id = EXCLUDED.customer_id,
			amount = EXCLUDED.amount,
			currency_code = EXCLUDED.currency_code,
			occurred_at = EXCLUDED.occurred_at,
			status = EXCLUDED.status,
			metadata = revenue_ledger_entries.metadata || EXCLUDED.metadata,
			instructor_commission_amount = EXCLUDED.instructor_commission_amount,
			instructor_commission_type = EXCLUDED.instructor_commission_type,
			instructor_commission_value = EXCLUDED.instructor_commission_value,
			instructor_commission_source = EXCLUDED.instructor_commission_source,
			updated_at = EXCLUDED.updated_at;
	`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		if m.Metadata == nil {
			m.Metadata = map[string]any{}
		}
		batch.Queue(upsertQuery,
			m.EntryID,
			m.SourceType,
			m.SourceID,
			m.ServiceType,
			m.ServiceSubtype,
			m.ServiceID,
			m.CustomerID,
			m.Amount,
			m.CurrencyCode,
			m.OccurredAt,
			m.Status,
			m.Metadata,
			m.CommissionAmt,
			m.CommissionType,
			m.CommissionVal,
			m.CommissionSrc,
			now,
			now,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute ledger upsert batch", err)
	}

	return r.Commit(ctx, tx)
}

// ClearRange deletes every ledger row whose occurrence date falls inside
// the inclusive window, across all source types.
func (r *PgxLedgerRepository) ClearRange(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		DELETE FROM revenue_ledger_entries
		WHERE occurred_at::date BETWEEN $1::date AND $2::date;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, from, to)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to clear ledger range", err)
	}
	return cmdTag.RowsAffected(), nil
}

// GetServiceTotalsData returns per (service_type, status) sums and counts
// for rows whose occurrence date is inside the window.
func (r *PgxLedgerRepository) GetServiceTotalsData(ctx context.Context, from, to time.Time) ([]domain.ServiceStatusTotal, error) {
	query := `
		SELECT service_type, status,
		       SUM(amount) AS total_amount,
		       SUM(instructor_commission_amount) AS total_commission,
		       COUNT(*) AS entry_count
		FROM revenue_ledger_entries
		WHERE occurred_at::date BETWEEN $1::date AND $2::date
		GROUP BY service_type, status;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger totals", err)
	}
	defer rows.Close()

	result := []domain.ServiceStatusTotal{}
	for rows.Next() {
		var row domain.ServiceStatusTotal
		if err := rows.Scan(
			&row.ServiceType,
			&row.Status,
			&row.Amount,
			&row.CommissionAmount,
			&row.EntryCount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger totals row", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger totals rows", err)
	}

	return result, nil
}

// FindEntryBySource retrieves a single ledger entry by its natural key.
func (r *PgxLedgerRepository) FindEntryBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM revenue_ledger_entries
		WHERE source_type = $1 AND source_id = $2;
	`

	m, err := scanLedgerEntryRow(r.Pool.QueryRow(ctx, query, string(sourceType), sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry for "+string(sourceType)+"/"+sourceID, err)
	}

	entry := mapping.ToDomainLedgerEntry(*m)
	return &entry, nil
}

// ListEntries retrieves a window of ledger entries ordered by occurrence
// time descending, with token-based cursor pagination.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + ledgerColumns + `
		FROM revenue_ledger_entries
		WHERE occurred_at::date BETWEEN $1::date AND $2::date
	`
	// Ordering must be total: rows written in one sync batch share their
	// recorded_at, so entry_id is the final tie-breaker.
	orderByClause := `ORDER BY occurred_at DESC, recorded_at DESC, entry_id DESC`

	args := []interface{}{from, to}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastRecordedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor condition concise and efficient.
		query += ` AND (occurred_at, recorded_at, entry_id) < ($3, $4, $5)`
		args = append(args, lastOccurredAt, lastRecordedAt, lastEntryID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanLedgerEntryRow(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", scanErr)
		}
		modelEntries = append(modelEntries, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		lastEntry := modelEntries[limit-1] // The actual last item of the current page
		token := pagination.EncodeToken(lastEntry.OccurredAt, lastEntry.RecordedAt, lastEntry.EntryID)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// rowScanner matches both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerEntryRow(s rowScanner) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	if err := s.Scan(
		&m.EntryID,
		&m.SourceType,
		&m.SourceID,
		&m.ServiceType,
		&m.ServiceSubtype,
		&m.ServiceID,
		&m.CustomerID,
		&m.Amount,
		&m.CurrencyCode,
		&m.OccurredAt,
		&m.Status,
		&m.Metadata,
		&m.CommissionAmt,
		&m.CommissionType,
		&m.CommissionVal,
		&m.CommissionSrc,
		&m.RecordedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
