package response

import (
	"errors"
	"net/http"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/company"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/employee"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyUsernameExists):
		Conflict(w, "Company username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftTemplateNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, shift.ErrShiftTemplateNameExists):
		Conflict(w, "Shift template name already in use")
	case errors.Is(err, shift.ErrShiftTemplateInUse):
		Conflict(w, "Shift template is referenced by a recurring schedule")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Recurring schedule not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, schedule.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, schedule.ErrEmptyWeekdaySet):
		BadRequest(w, "Recurrence requires at least one weekday", nil)
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Time log domain errors
	case errors.Is(err, timelog.ErrTimeLogNotFound):
		NotFound(w, "Time log not found")
	case errors.Is(err, timelog.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, timelog.ErrNotClockedIn):
		Conflict(w, "No open time log")
	case errors.Is(err, timelog.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already open")
	case errors.Is(err, timelog.ErrNoOpenBreak):
		Conflict(w, "No open break")
	case errors.Is(err, timelog.ErrInvalidTimeRange):
		BadRequest(w, "Time out must be after time in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Subscription domain errors
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		NotFound(w, "Subscription not found")
	case errors.Is(err, subscription.ErrSubscriptionExpired):
		PaymentRequired(w, "Subscription has expired")
	case errors.Is(err, subscription.ErrAlreadySubscribed):
		Conflict(w, "Company already has a subscription")
	case errors.Is(err, subscription.ErrPlanNotFound):
		NotFound(w, "Plan not found")
	case errors.Is(err, subscription.ErrPlanNotActive):
		BadRequest(w, "Plan is not active", nil)
	case errors.Is(err, subscription.ErrSeatLimitExceeded):
		PaymentRequired(w, "Seat limit exceeded for current subscription")
	case errors.Is(err, subscription.ErrExceedsPlanMaxSeats):
		BadRequest(w, "Requested seats exceed plan maximum", nil)
	case errors.Is(err, subscription.ErrSeatsBelowActive):
		BadRequest(w, "Seat count cannot be less than active employees", nil)
	case errors.Is(err, subscription.ErrFeatureNotAvailable):
		Forbidden(w, "Feature not available in current subscription")

	// Access errors
	case errors.Is(err, user.ErrUnauthorized):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Insufficient role for this operation")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
