package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/plannivo/revenue-backend/internal/apperrors"
	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/dto"
	"github.com/plannivo/revenue-backend/internal/middleware"
)

// revenueHandler handles HTTP requests for the revenue ledger engine.
type revenueHandler struct {
	syncService      portssvc.RevenueSyncSvcFacade
	reportingService portssvc.RevenueReportingSvcFacade
}

// newRevenueHandler creates a new revenueHandler
func newRevenueHandler(sync portssvc.RevenueSyncSvcFacade, reporting portssvc.RevenueReportingSvcFacade) *revenueHandler {
	return &revenueHandler{
		syncService:      sync,
		reportingService: reporting,
	}
}

// RegisterRevenueRoutes registers the revenue ledger routes. The sync
// endpoint is rate limited separately since it triggers full batch work.
func RegisterRevenueRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, syncLimiter gin.HandlerFunc) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(dto.SyncWindowStructLevelValidation, dto.SyncLedgerRequest{})
	}

	h := newRevenueHandler(services.RevenueSync, services.RevenueReporting)

	revenueGroup := rg.Group("/revenue")
	{
		revenueGroup.POST("/sync", syncLimiter, h.syncLedger)
		revenueGroup.GET("/totals", h.getTotals)
		revenueGroup.GET("/entries", h.listEntries)
	}
}

func (h *revenueHandler) syncLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SyncLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid sync request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	from, to := req.Window()
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to sync revenue ledger",
		slog.Bool("truncate", req.Truncate),
		slog.String("triggered_by", userID))

	if err := h.syncService.SyncRevenueLedger(c.Request.Context(), from, to, req.Truncate); err != nil {
		logger.Error("Revenue ledger sync failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync revenue ledger"})
		return
	}

	resp := dto.SyncLedgerResponse{Truncate: req.Truncate, Status: "completed"}
	if req.DateStart != nil {
		resp.DateStart = *req.DateStart
	}
	if req.DateEnd != nil {
		resp.DateEnd = *req.DateEnd
	}
	c.JSON(http.StatusOK, resp)
}

func (h *revenueHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseWindowQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.LedgerTotals(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute ledger totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ledger totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerTotalsResponse(*report, c.Query("dateStart"), c.Query("dateEnd")))
}

func (h *revenueHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseWindowQuery(c)
	if !ok {
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	entries, newToken, err := h.reportingService.ListLedgerEntries(c.Request.Context(), from, to, limit, nextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{Entries: entries, NextToken: newToken})
}

// parseWindowQuery reads optional dateStart/dateEnd query params in
// YYYY-MM-DD form. Absent params leave zero times, which the services
// widen to all time.
func parseWindowQuery(c *gin.Context) (time.Time, time.Time, bool) {
	var from, to time.Time
	var err error

	if fromStr := c.Query("dateStart"); fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateStart format. Use YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}
	if toStr := c.Query("dateEnd"); toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateEnd format. Use YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateEnd must not precede dateStart"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
