package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("recurring schedule not found")
	ErrEmptyWeekdaySet  = errors.New("recurring schedule must repeat on at least one weekday")
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
	ErrShiftNotFound    = errors.New("referenced shift template not found")
	ErrEmployeeNotFound = errors.New("referenced employee not found")
)
