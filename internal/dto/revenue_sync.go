package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// SyncLedgerRequest is the body for POST /revenue/sync. Omitted dates
// widen the window to all time; truncate requests a full-window rebuild
// instead of an incremental merge.
type SyncLedgerRequest struct {
	DateStart *string `json:"dateStart" binding:"omitempty,datetime=2006-01-02"`
	DateEnd   *string `json:"dateEnd" binding:"omitempty,datetime=2006-01-02"`
	Truncate  bool    `json:"truncate"`
}

// SyncWindowStructLevelValidation rejects a window whose end precedes its
// start. Field-level tags have already checked the date format.
func SyncWindowStructLevelValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(SyncLedgerRequest)
	if req.DateStart == nil || req.DateEnd == nil {
		return
	}
	from, errFrom := time.Parse(dateLayout, *req.DateStart)
	to, errTo := time.Parse(dateLayout, *req.DateEnd)
	if errFrom != nil || errTo != nil {
		return
	}
	if to.Before(from) {
		sl.ReportError(req.DateEnd, "dateEnd", "DateEnd", "gtefield", "DateStart")
	}
}

// Window parses the request bounds. Validation has already guaranteed the
// format, so parse errors only occur for absent values.
func (r SyncLedgerRequest) Window() (time.Time, time.Time) {
	var from, to time.Time
	if r.DateStart != nil {
		from, _ = time.Parse(dateLayout, *r.DateStart)
	}
	if r.DateEnd != nil {
		to, _ = time.Parse(dateLayout, *r.DateEnd)
	}
	return from, to
}

// SyncLedgerResponse acknowledges a completed sync run.
type SyncLedgerResponse struct {
	DateStart string `json:"dateStart,omitempty"`
	DateEnd   string `json:"dateEnd,omitempty"`
	Truncate  bool   `json:"truncate"`
	Status    string `json:"status"`
}
