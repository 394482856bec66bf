package timelog

import (
	"errors"
)

var (
	ErrTimeLogNotFound  = errors.New("time log not found")
	ErrAlreadyClockedIn = errors.New("employee already has an open time log")
	ErrNotClockedIn     = errors.New("employee has no open time log")
	ErrBreakAlreadyOpen = errors.New("employee already has an open break")
	ErrNoOpenBreak      = errors.New("employee has no open break")
	ErrInvalidTimeRange = errors.New("time out must be after time in")
)
