package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/models"
	"github.com/ruislan/ktap-sub003/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository   repositories.FollowRepository
	timelineRepository repositories.TimelineRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, timelineRepo repositories.TimelineRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:   followRepo,
		timelineRepository: timelineRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/apps/:id/follow", h.FollowApp)
	g.DELETE("/apps/:id/follow", h.UnfollowApp)
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
}

// FollowApp follows a game
func (h *FollowHandler) FollowApp(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	appID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid app ID")
	}

	if err := h.followRepository.FollowApp(c.Request().Context(), currentUserID, uint(appID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.appendTimeline(c, currentUserID, models.TargetApp, uint(appID))

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// UnfollowApp unfollows a game
func (h *FollowHandler) UnfollowApp(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	appID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid app ID")
	}

	if err := h.followRepository.UnfollowApp(c.Request().Context(), currentUserID, uint(appID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.appendTimeline(c, currentUserID, models.TargetApp, uint(appID))

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID == uint(targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if err := h.followRepository.FollowUser(c.Request().Context(), currentUserID, uint(targetID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.appendTimeline(c, currentUserID, models.TargetUser, uint(targetID))

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followRepository.UnfollowUser(c.Request().Context(), currentUserID, uint(targetID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.appendTimeline(c, currentUserID, models.TargetUser, uint(targetID))

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// appendTimeline records the actor's own action. A timeline write failure
// never fails the follow itself.
func (h *FollowHandler) appendTimeline(c echo.Context, userID uint, target string, targetID uint) {
	_ = h.timelineRepository.Append(c.Request().Context(), &models.TimelineEntry{
		UserID:   userID,
		Target:   target,
		TargetID: targetID,
	})
}
