package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/models"
	"github.com/ruislan/ktap-sub003/internal/repositories"
)

// SettingsHandler handles notification preference HTTP requests
type SettingsHandler struct {
	preferenceRepository repositories.PreferenceRepository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(prefRepo repositories.PreferenceRepository) *SettingsHandler {
	return &SettingsHandler{preferenceRepository: prefRepo}
}

// RegisterSettingsRoutes registers settings routes
func (h *SettingsHandler) RegisterSettingsRoutes(g *echo.Group) {
	g.GET("/settings/notifications", h.GetPreferences)
	g.PUT("/settings/notifications", h.UpdatePreferences)
}

// GetPreferences returns the caller's category toggles. A user who never
// saved preferences sees every category off.
func (h *SettingsHandler) GetPreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	pref, err := h.preferenceRepository.Get(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if pref == nil {
		pref = &models.NotificationPreference{UserID: currentUserID}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    pref,
	})
}

// UpdatePreferences upserts the caller's category toggles
func (h *SettingsHandler) UpdatePreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pref := &models.NotificationPreference{
		UserID:               currentUserID,
		FollowingAppChanged:  *req.FollowingAppChanged,
		FollowingUserChanged: *req.FollowingUserChanged,
		ReactionReplied:      *req.ReactionReplied,
		ReactionThumbed:      *req.ReactionThumbed,
		ReactionGiftSent:     *req.ReactionGiftSent,
	}
	if err := h.preferenceRepository.Upsert(c.Request().Context(), pref); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    pref,
	})
}
