package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

// Feature is a gated capability identified by a stable code.
type Feature struct {
	ID          string
	Code        string
	Name        string
	Description *string
	CreatedAt   time.Time
}

// Feature codes checked by the route gates.
const (
	FeatureTimeTracking    = "time_tracking"
	FeatureLeaveManagement = "leave_management"
	FeatureAttendance      = "attendance_overview"
)

type Plan struct {
	ID           string
	Name         string
	PricePerSeat decimal.Decimal
	TierLevel    int
	MaxSeats     *int // nil = unlimited
	IsActive     bool
	Features     []Feature
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Subscription struct {
	ID                 string
	CompanyID          string
	PlanID             string
	Status             SubscriptionStatus
	MaxSeats           int
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined data.
	Plan     *Plan
	Features []Feature
}

// IsUsable reports whether the subscription still grants access. Past-due
// subscriptions keep access until the grace period runs out.
func (s *Subscription) IsUsable() bool {
	return s.Status == StatusActive || s.Status == StatusTrial || s.Status == StatusPastDue
}

func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.CurrentPeriodEnd)
}

// IsInGracePeriod reports whether now falls in the 7 days after period end.
func (s *Subscription) IsInGracePeriod(now time.Time) bool {
	graceEnd := s.CurrentPeriodEnd.Add(7 * 24 * time.Hour)
	return now.After(s.CurrentPeriodEnd) && now.Before(graceEnd)
}

func (s *Subscription) HasFeature(code string) bool {
	for _, f := range s.Features {
		if f.Code == code {
			return true
		}
	}
	return false
}

func (s *Subscription) CanAddEmployee(currentCount int) bool {
	return currentCount < s.MaxSeats
}
