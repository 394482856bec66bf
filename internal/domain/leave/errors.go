package leave

import (
	"errors"
)

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been processed")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrOverlappingLeave      = errors.New("leave request overlaps an existing request")
)
