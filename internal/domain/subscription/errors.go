package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionExpired  = errors.New("subscription has expired")
	ErrAlreadySubscribed    = errors.New("company already has an active subscription")

	ErrPlanNotFound  = errors.New("plan not found")
	ErrPlanNotActive = errors.New("plan is not active")

	ErrSeatLimitExceeded   = errors.New("seat limit exceeded for current subscription")
	ErrExceedsPlanMaxSeats = errors.New("requested seats exceed plan maximum")
	ErrSeatsBelowActive    = errors.New("seat count cannot be less than active employees")

	ErrFeatureNotFound     = errors.New("feature not found")
	ErrFeatureNotAvailable = errors.New("feature not available in current subscription")
)
