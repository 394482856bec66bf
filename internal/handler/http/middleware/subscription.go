package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http/response"
)

// SubscriptionMiddleware gates routes behind the company's subscription plan.
type SubscriptionMiddleware struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionMiddleware(subscriptionService subscription.SubscriptionService) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{
		subscriptionService: subscriptionService,
	}
}

// isUsableStatus mirrors Subscription.IsUsable for the response DTO.
func isUsableStatus(status subscription.SubscriptionStatus) bool {
	switch status {
	case subscription.StatusActive, subscription.StatusTrial, subscription.StatusPastDue:
		return true
	default:
		return false
	}
}

// RequireActiveSubscription checks that the company holds a usable
// subscription without caring which features it grants.
func (m *SubscriptionMiddleware) RequireActiveSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.Unauthorized(w, "unauthorized")
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.Unauthorized(w, "invalid token claims")
			return
		}

		if expiresAtUnix, ok := claims["subscription_expires_at"].(float64); ok {
			expiresAt := time.Unix(int64(expiresAtUnix), 0)
			if time.Now().After(expiresAt) {
				response.HandleError(w, subscription.ErrSubscriptionExpired)
				return
			}
		}

		sub, err := m.subscriptionService.GetMySubscription(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !isUsableStatus(sub.Status) {
			response.HandleError(w, subscription.ErrSubscriptionExpired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireFeature checks that the company's plan includes the given feature.
// Token claims give a fast path for both checks; the database verdict from
// CheckFeature is authoritative, so a stale token never grants access the
// current subscription lacks.
func (m *SubscriptionMiddleware) RequireFeature(featureCode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "unauthorized")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "invalid token claims")
				return
			}

			companyID, ok := claims["company_id"].(string)
			if !ok || companyID == "" {
				response.Forbidden(w, "no company associated with this token")
				return
			}

			// Early rejection when the token itself says the subscription
			// period already ended. Protects the window before the expiry
			// cron has flipped the row status.
			if expiresAtUnix, ok := claims["subscription_expires_at"].(float64); ok {
				expiresAt := time.Unix(int64(expiresAtUnix), 0)
				if time.Now().After(expiresAt) {
					response.HandleError(w, subscription.ErrSubscriptionExpired)
					return
				}
			}

			if err := m.subscriptionService.CheckFeature(r.Context(), companyID, featureCode); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
