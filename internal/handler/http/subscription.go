package http

import (
	"encoding/json"
	"net/http"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http/response"
)

type SubscriptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMySubscription(w http.ResponseWriter, r *http.Request)
	UpdateSeats(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)
}

type subscriptionHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandlerImpl{
		subscriptionService: subscriptionService,
	}
}

// Create implements SubscriptionHandler.
func (h *subscriptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req subscription.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.subscriptionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subscription created successfully", result)
}

// GetMySubscription implements SubscriptionHandler.
func (h *subscriptionHandlerImpl) GetMySubscription(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscriptionService.GetMySubscription(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSeats implements SubscriptionHandler.
func (h *subscriptionHandlerImpl) UpdateSeats(w http.ResponseWriter, r *http.Request) {
	var req subscription.UpdateSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.subscriptionService.UpdateSeats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subscription seats updated successfully", result)
}

// ListPlans implements SubscriptionHandler.
func (h *subscriptionHandlerImpl) ListPlans(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscriptionService.ListPlans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
