package handler

import (
	"net/http"

	"bookz/internal/delivery/http/response"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for author subscription handlers.
type SubscriptionHandler struct {
	uc usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

type subscribeRequest struct {
	Phone string `json:"phone"`
}

// Subscribe creates a subscription to the author in the path. Authenticated
// callers may omit the phone; guests must provide one.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	var input subscribeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	ctx := c.Request().Context()

	if userID, ok := userIDFromContext(c); ok {
		subscription, err := h.uc.SubscribeUser(ctx, userID, authorID, input.Phone)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, subscription, "Subscribed successfully")
	}

	subscription, err := h.uc.SubscribeGuest(ctx, input.Phone, authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscribed successfully")
}

// Unsubscribe removes an account-backed subscription owned by the caller.
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	subscriptionID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIPTION_ID", "Subscription ID must be a valid UUID")
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), subscriptionID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": subscriptionID.String()}, "Unsubscribed successfully")
}

// ListMine returns the caller's subscriptions, newest first.
func (h *SubscriptionHandler) ListMine(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	subscriptions, err := h.uc.GetUserSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "")
}

// Status reports whether the caller (account or ?phone=) is subscribed to the author.
func (h *SubscriptionHandler) Status(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	var userIDPtr *uuid.UUID
	if userID, ok := userIDFromContext(c); ok {
		userIDPtr = &userID
	}

	status, err := h.uc.GetStatus(c.Request().Context(), authorID, userIDPtr, c.QueryParam("phone"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// GenerateQR renders a PNG QR code that subscribes the scanner to the author.
func (h *SubscriptionHandler) GenerateQR(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	png, err := h.uc.GenerateSubscriptionQR(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type qrSubscribeRequest struct {
	QRData string `json:"qr_data" validate:"required"`
	Phone  string `json:"phone"`
}

// SubscribeFromQR decodes a scanned QR payload and subscribes the caller.
func (h *SubscriptionHandler) SubscribeFromQR(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input qrSubscribeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR subscription input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	subscription, err := h.uc.ProcessQRSubscription(c.Request().Context(), userID, input.QRData, input.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscribed successfully")
}
