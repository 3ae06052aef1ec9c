package services

import (
	portsrepo "github.com/plannivo/revenue-backend/internal/core/ports/repositories"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Adapter order mirrors the sync sequence: bookings, rentals, stays.
	container.RevenueSync = NewRevenueSyncService(
		repos.LedgerRepo,
		NewBookingAdapter(repos.BookingRepo, cfg.BaseCurrency),
		NewRentalAdapter(repos.RentalRepo, cfg.BaseCurrency),
		NewAccommodationAdapter(repos.AccommodationRepo, cfg.BaseCurrency),
	)

	container.RevenueReporting = NewRevenueReportingService(repos.LedgerRepo, cfg.BaseCurrency)

	return container
}
