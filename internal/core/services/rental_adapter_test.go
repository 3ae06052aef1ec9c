package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/plannivo/revenue-backend/internal/core/domain"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRentalSourceRepository is a mock type for the RentalSourceRepository interface
type MockRentalSourceRepository struct {
	mock.Mock
}

func (m *MockRentalSourceRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}

// --- Test Suite Setup ---

type RentalAdapterTestSuite struct {
	suite.Suite
	mockRepo *MockRentalSourceRepository
	adapter  portssvc.SourceAdapter
	from     time.Time
	to       time.Time
}

func (suite *RentalAdapterTestSuite) SetupTest() {
	suite.mockRepo = new(MockRentalSourceRepository)
	suite.adapter = services.NewRentalAdapter(suite.mockRepo, "EUR")
	suite.from = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
}

func (suite *RentalAdapterTestSuite) eligibleRental() domain.RentalRecord {
	return domain.RentalRecord{
		RentalID:      "rent-1",
		Status:        "Returned",
		TotalPrice:    decimal.RequireFromString("45"),
		RentalDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EquipmentIDs:  []string{"kite-9", "board-3"},
		PaymentStatus: strPtr("paid"),
		CustomerID:    strPtr("cust-2"),
	}
}

// --- Test Cases ---

func (suite *RentalAdapterTestSuite) TestExtract_EligibleRental() {
	ctx := context.Background()
	rental := suite.eligibleRental()
	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).Return([]domain.RentalRecord{rental}, nil).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	entry := entries[0]
	suite.Equal(domain.SourceRental, entry.SourceType)
	suite.Equal("rent-1", entry.SourceID)
	suite.Equal(domain.ServiceTypeRental, entry.ServiceType)
	suite.Equal("returned", entry.Status)
	suite.Equal("EUR", entry.CurrencyCode)
	suite.True(decimal.RequireFromString("45").Equal(entry.Amount))
	suite.True(entry.InstructorCommissionAmount.IsZero())
	suite.Equal("2025-06-10", entry.Metadata["rental_date"])
	suite.Equal([]string{"kite-9", "board-3"}, entry.Metadata["equipment_ids"])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RentalAdapterTestSuite) TestExtract_OccurredAtPrecedence() {
	ctx := context.Background()

	withEnd := suite.eligibleRental()
	withEnd.RentalID = "rent-end"
	withEnd.StartDate = timePtr(time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC))
	withEnd.EndDate = timePtr(time.Date(2025, 6, 12, 17, 0, 0, 0, time.UTC))

	withStart := suite.eligibleRental()
	withStart.RentalID = "rent-start"
	withStart.StartDate = timePtr(time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC))

	dateOnly := suite.eligibleRental()
	dateOnly.RentalID = "rent-date"

	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).
		Return([]domain.RentalRecord{withEnd, withStart, dateOnly}, nil).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	occurred := map[string]time.Time{}
	for _, e := range entries {
		occurred[e.SourceID] = e.OccurredAt
	}
	suite.Equal(time.Date(2025, 6, 12, 17, 0, 0, 0, time.UTC), occurred["rent-end"])
	suite.Equal(time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC), occurred["rent-start"])
	suite.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), occurred["rent-date"])
}

func (suite *RentalAdapterTestSuite) TestExtract_Ineligible() {
	ctx := context.Background()

	pending := suite.eligibleRental()
	pending.RentalID = "rent-pending"
	pending.Status = "pending"

	freebie := suite.eligibleRental()
	freebie.RentalID = "rent-free"
	freebie.TotalPrice = decimal.Zero

	outOfWindow := suite.eligibleRental()
	outOfWindow.RentalID = "rent-july"
	outOfWindow.EndDate = timePtr(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))

	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).
		Return([]domain.RentalRecord{pending, freebie, outOfWindow}, nil).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *RentalAdapterTestSuite) TestExtract_ReversalStatusIncluded() {
	ctx := context.Background()

	cancelled := suite.eligibleRental()
	cancelled.RentalID = "rent-cancelled"
	cancelled.Status = "Cancelled"

	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).
		Return([]domain.RentalRecord{cancelled}, nil).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("cancelled", entries[0].Status)
	suite.Equal("45.00", entries[0].Amount.StringFixed(2))
}

func (suite *RentalAdapterTestSuite) TestExtract_ActiveRentalIncluded() {
	ctx := context.Background()
	active := suite.eligibleRental()
	active.Status = "active"

	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).
		Return([]domain.RentalRecord{active}, nil).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("active", entries[0].Status)
}

func (suite *RentalAdapterTestSuite) TestExtract_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("ListInRange", ctx, suite.from, suite.to).
		Return(nil, context.DeadlineExceeded).Once()

	entries, err := suite.adapter.Extract(ctx, suite.from, suite.to)

	suite.Require().Error(err)
	suite.Nil(entries)
}

func TestRentalAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(RentalAdapterTestSuite))
}
