package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/notifier"
)

// EventHandler is the seam the content layer reports through: one content
// event in, reaction and following dispatch out.
type EventHandler struct {
	notifier *notifier.Notifier
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(n *notifier.Notifier) *EventHandler {
	return &EventHandler{notifier: n}
}

// RegisterEventRoutes registers dispatch routes
func (h *EventHandler) RegisterEventRoutes(g *echo.Group) {
	g.POST("/events", h.ReportEvent)
	g.POST("/admin/notifications/system", h.SendSystemNotification)
}

// ContentEventRequest describes a content action to fan out
type ContentEventRequest struct {
	Action   string `json:"action" validate:"required"`
	OwnerID  uint   `json:"owner_id"`
	Target   string `json:"target" validate:"required,oneof=App User"`
	TargetID uint   `json:"target_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	URL      string `json:"url"`
}

// ReportEvent dispatches one content event. The owner of the content (when
// given, and not the actor) is notified as a reaction; followers of the
// target are notified through the following fan-out.
func (h *EventHandler) ReportEvent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req ContentEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	action := notifier.Action(req.Action)

	notified := false
	if req.OwnerID != 0 && req.OwnerID != currentUserID {
		var err error
		notified, err = h.notifier.NotifyReaction(ctx, action, req.OwnerID, req.Target, req.TargetID, req.Title, req.Content, req.URL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	count, err := h.notifier.NotifyFollowing(ctx, action, currentUserID, req.Target, req.TargetID, req.Title, req.Content, req.URL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notified":      notified,
			"notifiedCount": count,
		},
	})
}

// SystemNotificationRequest describes a system notice for one user
type SystemNotificationRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// SendSystemNotification writes one system notification, bypassing
// preference filtering.
func (h *EventHandler) SendSystemNotification(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req SystemNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.notifier.NotifySystem(c.Request().Context(), req.UserID, req.Title, req.Content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
