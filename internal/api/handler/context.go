package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware. Presence
// of a username proves the middleware ran; anything else is a broken token
// and gets rejected before any service call.
func ctxActor(c echo.Context) (ports.Actor, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)

	return ports.Actor{
		UserID:   userID,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
