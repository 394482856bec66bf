package timelog

import (
	"time"
)

type TimeLogStatus string

const (
	TimeLogStatusOpen       TimeLogStatus = "open"
	TimeLogStatusClosed     TimeLogStatus = "closed"
	TimeLogStatusAutoClosed TimeLogStatus = "auto_closed"
	TimeLogStatusCorrected  TimeLogStatus = "corrected"
)

// TimeLog is a single punch pair. TimeOut is nil while the punch is open;
// an open punch contributes zero worked hours until it is closed.
type TimeLog struct {
	ID         string
	CompanyID  string
	EmployeeID string
	TimeIn     time.Time
	TimeOut    *time.Time
	Status     TimeLogStatus
	DeviceInfo *string
	Breaks     []BreakLog
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated on reads for API responses.
	EmployeeName *string
}

type BreakLog struct {
	ID         string
	TimeLogID  string
	BreakStart time.Time
	BreakEnd   *time.Time
	CreatedAt  time.Time
}
