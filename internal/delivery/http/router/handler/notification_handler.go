package handler

import (
	"net/http"
	"time"

	"bookz/internal/delivery/http/response"
	"bookz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler exposes the SMS notification operations to admins.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// NotifyBook re-triggers the new-book fan-out for one book. Every trigger
// sends again; there is no idempotency ledger.
func (h *NotificationHandler) NotifyBook(c echo.Context) error {
	bookID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_BOOK_ID", "Book ID must be a valid UUID")
	}

	result, err := h.uc.NotifyNewBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Notification dispatched")
}

type notifyRecentRequest struct {
	Hours int `json:"hours" validate:"required,min=1"`
}

// NotifyRecent runs the fan-out for every book created in the last N hours.
func (h *NotificationHandler) NotifyRecent(c echo.Context) error {
	var input notifyRecentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.NotifyRecent(c.Request().Context(), time.Duration(input.Hours)*time.Hour)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Notifications dispatched")
}

type sendTestRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// SendTest sends a single test SMS to the given phone.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	var input sendTestRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.SendTest(c.Request().Context(), input.Phone); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"phone": input.Phone}, "Test SMS sent")
}

// Balance returns the SMS account balance.
func (h *NotificationHandler) Balance(c echo.Context) error {
	balance, err := h.uc.Balance(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"balance": balance}, "")
}

// AccountInfo returns SMS account metadata.
func (h *NotificationHandler) AccountInfo(c echo.Context) error {
	info, err := h.uc.AccountInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "")
}
