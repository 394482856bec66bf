package overview

import (
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

type MonthlyHoursRequest struct {
	Year       int
	Month      time.Month
	EmployeeID *string
}

func (r *MonthlyHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < time.January || r.Month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyHoursRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Month          string  `json:"month"`
	ScheduledHours float64 `json:"scheduled_hours"`
	ActualHours    float64 `json:"actual_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
}

type MonthlyHoursResponse struct {
	Month string            `json:"month"`
	Rows  []MonthlyHoursRow `json:"rows"`
}

type PunchClassification struct {
	TimeLogID    string  `json:"time_log_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	TimeIn       string  `json:"time_in"`
	TimeOut      *string `json:"time_out"`
	IsLate       bool    `json:"is_late"`
	IsEarlyOut   bool    `json:"is_early_out"`
	WorkedHours  float64 `json:"worked_hours"`
}

type DailyAttendanceResponse struct {
	Date    string                `json:"date"`
	Punches []PunchClassification `json:"punches"`
}

// TodaySummary is the dashboard headline for the current day.
type TodaySummary struct {
	Date           string  `json:"date"`
	Scheduled      int     `json:"scheduled"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}
