package schedule

import "time"

// RecurringSchedule assigns a shift template to an employee on a weekly
// repeating set of days. RecurrencePattern holds the canonical weekly rule
// produced by the recurrence package. EndDate is nil for open-ended
// assignments.
//
// The data model permits two assignments to cover the same employee on the
// same day; lookups resolve the ambiguity last-write-wins (see the overview
// service's schedule index).
type RecurringSchedule struct {
	ID                string
	CompanyID         string
	ShiftID           string
	EmployeeID        string
	RecurrencePattern string
	StartDate         time.Time
	EndDate           *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
	ShiftName    *string
}
