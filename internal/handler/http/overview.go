package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/overview"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http/response"
)

type OverviewHandler interface {
	MonthlyHours(w http.ResponseWriter, r *http.Request)
	DailyAttendance(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type overviewHandlerImpl struct {
	overviewService overview.OverviewService
}

func NewOverviewHandler(overviewService overview.OverviewService) OverviewHandler {
	return &overviewHandlerImpl{
		overviewService: overviewService,
	}
}

// MonthlyHours implements OverviewHandler. Defaults to the current month
// when year and month are not supplied.
func (h *overviewHandlerImpl) MonthlyHours(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := overview.MonthlyHoursRequest{
		Year:  now.Year(),
		Month: now.Month(),
	}

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}
	if m := r.URL.Query().Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = time.Month(month)
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.overviewService.MonthlyHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyAttendance implements OverviewHandler. Defaults to today when no
// date is supplied.
func (h *overviewHandlerImpl) DailyAttendance(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		day = parsed
	}

	result, err := h.overviewService.DailyAttendance(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Today implements OverviewHandler.
func (h *overviewHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.overviewService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
