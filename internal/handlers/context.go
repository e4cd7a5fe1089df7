package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/models"
)

// getUserIDFromContext returns the authenticated user's id, or 0 when the
// request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// getTokenFromContext returns the raw bearer token the middleware validated.
func getTokenFromContext(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
