package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/plannivo/revenue-backend/internal/core/domain"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/handlers"
	"github.com/plannivo/revenue-backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RevenueSyncService ---
type MockRevenueSyncService struct {
	mock.Mock
}

func (m *MockRevenueSyncService) SyncRevenueLedger(ctx context.Context, dateStart, dateEnd time.Time, truncate bool) error {
	args := m.Called(ctx, dateStart, dateEnd, truncate)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.RevenueSyncSvcFacade = (*MockRevenueSyncService)(nil)

// --- Mock RevenueReportingService ---
type MockRevenueReportingService struct {
	mock.Mock
}

func (m *MockRevenueReportingService) LedgerTotals(ctx context.Context, dateStart, dateEnd time.Time) (*domain.TotalsReport, error) {
	args := m.Called(ctx, dateStart, dateEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TotalsReport), args.Error(1)
}

func (m *MockRevenueReportingService) ListLedgerEntries(ctx context.Context, dateStart, dateEnd time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, dateStart, dateEnd, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.RevenueReportingSvcFacade = (*MockRevenueReportingService)(nil)

// --- Test Suite ---
type RevenueHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockSync      *MockRevenueSyncService
	mockReporting *MockRevenueReportingService
	jwtSecret     string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *RevenueHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "revenue-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RevenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSync = new(MockRevenueSyncService)
	suite.mockReporting = new(MockRevenueReportingService)

	services := &portssvc.ServiceContainer{
		RevenueSync:      suite.mockSync,
		RevenueReporting: suite.mockReporting,
	}
	v1 := suite.router.Group("/api/v1")
	noLimit := func(c *gin.Context) { c.Next() }
	handlers.RegisterRevenueRoutes(v1, services, noLimit)
}

func (suite *RevenueHandlerTestSuite) authedRequest(method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *RevenueHandlerTestSuite) TestSyncLedger_Success() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	suite.mockSync.On("SyncRevenueLedger", mock.Anything, from, to, true).Return(nil).Once()

	body := []byte(`{"dateStart":"2025-06-01","dateEnd":"2025-06-30","truncate":true}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/revenue/sync", body)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("completed", resp["status"])
	suite.Equal(true, resp["truncate"])
	suite.mockSync.AssertExpectations(suite.T())
}

func (suite *RevenueHandlerTestSuite) TestSyncLedger_DefaultsToUnboundedWindow() {
	suite.mockSync.On("SyncRevenueLedger", mock.Anything, time.Time{}, time.Time{}, false).Return(nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/revenue/sync", []byte(`{}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSync.AssertExpectations(suite.T())
}

func (suite *RevenueHandlerTestSuite) TestSyncLedger_RejectsBadDate() {
	body := []byte(`{"dateStart":"June 1st"}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/revenue/sync", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSync.AssertNotCalled(suite.T(), "SyncRevenueLedger")
}

func (suite *RevenueHandlerTestSuite) TestSyncLedger_RejectsInvertedWindow() {
	body := []byte(`{"dateStart":"2025-06-30","dateEnd":"2025-06-01"}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/revenue/sync", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSync.AssertNotCalled(suite.T(), "SyncRevenueLedger")
}

func (suite *RevenueHandlerTestSuite) TestSyncLedger_ServiceError() {
	suite.mockSync.On("SyncRevenueLedger", mock.Anything, mock.Anything, mock.Anything, false).
		Return(context.DeadlineExceeded).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/revenue/sync", []byte(`{}`))

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestSyncLedger_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/revenue/sync", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestGetTotals_Success() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	report := &domain.TotalsReport{
		ExpectedTotal:       decimal.RequireFromString("100"),
		ExpectedByService:   map[string]decimal.Decimal{"lesson": decimal.RequireFromString("100")},
		CountsByService:     map[string]int64{"lesson": 1},
		CommissionByService: map[string]decimal.Decimal{"lesson": decimal.RequireFromString("15")},
		CommissionTotal:     decimal.RequireFromString("15"),
		CommissionRate:      decimal.RequireFromString("0.15"),
		EntryCount:          1,
		RefundedTotal:       decimal.Zero,
		CurrencyCode:        "EUR",
	}
	suite.mockReporting.On("LedgerTotals", mock.Anything, from, to).Return(report, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/revenue/totals?dateStart=2025-06-01&dateEnd=2025-06-30", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("100", resp["expectedTotal"])
	suite.Equal("EUR", resp["currency"])
	suite.Equal("2025-06-01", resp["dateStart"])
}

func (suite *RevenueHandlerTestSuite) TestGetTotals_RejectsBadDate() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/revenue/totals?dateStart=notadate", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "LedgerTotals")
}

func (suite *RevenueHandlerTestSuite) TestListEntries_Success() {
	token := "page-2"
	entries := []domain.LedgerEntry{{EntryID: "le-1", SourceType: domain.SourceBooking, SourceID: "bk-1"}}
	suite.mockReporting.On("ListLedgerEntries", mock.Anything, time.Time{}, time.Time{}, 10, (*string)(nil)).
		Return(entries, &token, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/revenue/entries?limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("page-2", resp["nextToken"])
	suite.Len(resp["entries"], 1)
}

func (suite *RevenueHandlerTestSuite) TestListEntries_RejectsBadLimit() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/revenue/entries?limit=-3", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "ListLedgerEntries")
}

func TestRevenueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueHandlerTestSuite))
}
