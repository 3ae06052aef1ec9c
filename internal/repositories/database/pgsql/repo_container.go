package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:        newPgxLedgerRepository(dbPool),
		BookingRepo:       newPgxBookingSourceRepository(dbPool),
		RentalRepo:        newPgxRentalSourceRepository(dbPool),
		AccommodationRepo: newPgxAccommodationSourceRepository(dbPool),
	}
}
