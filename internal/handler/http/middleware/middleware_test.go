package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/jwt"
)

const testSecret = "middleware-test-secret"

type fakeSubscriptionService struct {
	checkFeatureErr error
}

func (f *fakeSubscriptionService) Create(ctx context.Context, req subscription.CreateSubscriptionRequest) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) GetMySubscription(ctx context.Context) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) UpdateSeats(ctx context.Context, req subscription.UpdateSeatsRequest) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) ListPlans(ctx context.Context) ([]subscription.PlanResponse, error) {
	return nil, nil
}

func (f *fakeSubscriptionService) CheckFeature(ctx context.Context, companyID, featureCode string) error {
	return f.checkFeatureErr
}

func (f *fakeSubscriptionService) CheckSeatAvailable(ctx context.Context, companyID string) error {
	return nil
}

func (f *fakeSubscriptionService) ExpireOverdue(ctx context.Context) (int, error) {
	return 0, nil
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newTestRouter(jwtService jwt.Service, subSvc subscription.SubscriptionService) *chi.Mux {
	subMw := NewSubscriptionMiddleware(subSvc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService))

		r.Get("/open", okHandler)

		r.Group(func(r chi.Router) {
			r.Use(RequireManager)
			r.Get("/manage", okHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireOwner)
			r.Get("/own", okHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(subMw.RequireFeature(subscription.FeatureTimeTracking))
			r.Get("/gated", okHandler)
		})
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService, &fakeSubscriptionService{})

	token, _, err := jwtService.GenerateAccessToken("emp-1", "comp-1", user.RoleEmployee, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(t, router, "/open", token))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, "/open", ""))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, "/open", "bogus-token"))
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService, &fakeSubscriptionService{})

	token, _, err := jwtService.GenerateAccessToken("emp-1", "comp-1", user.RoleEmployee, nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, doRequest(t, router, "/open", token))
	jwtService.RevokeToken(token)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, "/open", token))
}

func TestRoleMiddleware(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService, &fakeSubscriptionService{})

	ownerToken, _, err := jwtService.GenerateAccessToken("emp-1", "comp-1", user.RoleOwner, nil)
	require.NoError(t, err)
	managerToken, _, err := jwtService.GenerateAccessToken("emp-2", "comp-1", user.RoleManager, nil)
	require.NoError(t, err)
	employeeToken, _, err := jwtService.GenerateAccessToken("emp-3", "comp-1", user.RoleEmployee, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(t, router, "/manage", ownerToken))
	assert.Equal(t, http.StatusOK, doRequest(t, router, "/manage", managerToken))
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, "/manage", employeeToken))

	assert.Equal(t, http.StatusOK, doRequest(t, router, "/own", ownerToken))
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, "/own", managerToken))
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, "/own", employeeToken))
}

func TestRequireFeature(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService(testSecret, "1h")
	token, _, err := jwtService.GenerateAccessToken("emp-1", "comp-1", user.RoleEmployee, nil)
	require.NoError(t, err)

	granted := newTestRouter(jwtService, &fakeSubscriptionService{})
	assert.Equal(t, http.StatusOK, doRequest(t, granted, "/gated", token))

	denied := newTestRouter(jwtService, &fakeSubscriptionService{
		checkFeatureErr: subscription.ErrFeatureNotAvailable,
	})
	assert.Equal(t, http.StatusForbidden, doRequest(t, denied, "/gated", token))

	expired := newTestRouter(jwtService, &fakeSubscriptionService{
		checkFeatureErr: subscription.ErrSubscriptionExpired,
	})
	assert.Equal(t, http.StatusPaymentRequired, doRequest(t, expired, "/gated", token))
}

func TestRequireFeatureRejectsExpiredSubscriptionClaim(t *testing.T) {
	t.Parallel()

	jwtService := jwt.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService, &fakeSubscriptionService{})

	past := time.Now().Add(-time.Hour)
	token, _, err := jwtService.GenerateAccessToken("emp-1", "comp-1", user.RoleEmployee, &jwt.SubscriptionClaims{
		SubscriptionExpiresAt: &past,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusPaymentRequired, doRequest(t, router, "/gated", token))
}
