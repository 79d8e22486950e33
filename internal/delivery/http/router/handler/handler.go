// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"slices"

	"bookz/internal/delivery/http/middleware"
	"bookz/internal/delivery/http/response"
	"bookz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// userIDFromContext returns the authenticated user ID set by the auth
// middleware, or false when the request is anonymous.
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// actorFromContext rebuilds the acting user from the token claims. Only the
// identity and role are known at this layer; that is all authorization needs.
func actorFromContext(c echo.Context) (*entity.User, bool) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return nil, false
	}

	role := entity.RoleUser
	if roles, ok := c.Get(middleware.ContextKeyRoles).([]string); ok && slices.Contains(roles, entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	return &entity.User{ID: userID, Role: role}, true
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
