package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/ruislan/ktap-sub003/internal/models"
	"github.com/ruislan/ktap-sub003/internal/notifier"
	"github.com/ruislan/ktap-sub003/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPreferences struct {
	byUser map[uint]models.NotificationPreference
}

func (s *stubPreferences) Get(_ context.Context, userID uint) (*models.NotificationPreference, error) {
	if p, ok := s.byUser[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *stubPreferences) GetBatch(_ context.Context, userIDs []uint) (map[uint]models.NotificationPreference, error) {
	out := make(map[uint]models.NotificationPreference)
	for _, id := range userIDs {
		if p, ok := s.byUser[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type stubFollowers struct {
	appFollowers map[uint][]uint
}

func (s *stubFollowers) GetAppFollowerIDs(_ context.Context, appID uint) ([]uint, error) {
	return s.appFollowers[appID], nil
}

func (s *stubFollowers) GetUserFollowerIDs(_ context.Context, _ uint) ([]uint, error) {
	return nil, nil
}

type stubWriter struct {
	rows []models.Notification
}

func (s *stubWriter) Create(_ context.Context, n *models.Notification) error {
	s.rows = append(s.rows, *n)
	return nil
}

func (s *stubWriter) CreateBatch(_ context.Context, ns []models.Notification) (int64, error) {
	s.rows = append(s.rows, ns...)
	return int64(len(ns)), nil
}

func postEvent(t *testing.T, h *EventHandler, actorID uint, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: actorID})
	if err := h.ReportEvent(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestReportEventFansOutToOptedInFollowers(t *testing.T) {
	prefs := &stubPreferences{byUser: map[uint]models.NotificationPreference{
		1: {UserID: 1, FollowingAppChanged: true},
		2: {UserID: 2, FollowingAppChanged: false},
	}}
	followers := &stubFollowers{appFollowers: map[uint][]uint{9: {1, 2, 3}}}
	writer := &stubWriter{}
	h := NewEventHandler(notifier.New(prefs, followers, writer, zap.NewNop()))

	rec := postEvent(t, h, 100, `{"action":"newsCreated","target":"App","target_id":9,"title":"patch 1.2","content":"notes","url":"/apps/9/news/1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notifiedCount":1`)
	require.Len(t, writer.rows, 1)
	assert.Equal(t, uint(1), writer.rows[0].UserID)
}

func TestReportEventNotifiesContentOwner(t *testing.T) {
	prefs := &stubPreferences{byUser: map[uint]models.NotificationPreference{
		5: {UserID: 5, ReactionReplied: true},
	}}
	writer := &stubWriter{}
	h := NewEventHandler(notifier.New(prefs, &stubFollowers{}, writer, zap.NewNop()))

	rec := postEvent(t, h, 100, `{"action":"commentCreated","owner_id":5,"target":"User","target_id":5,"title":"new reply","content":"...","url":"/x"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notified":true`)
	require.Len(t, writer.rows, 1)
	assert.Equal(t, models.NotificationTypeReaction, writer.rows[0].Type)
}

func TestReportEventOwnerIsActor(t *testing.T) {
	prefs := &stubPreferences{byUser: map[uint]models.NotificationPreference{
		100: {UserID: 100, ReactionReplied: true},
	}}
	writer := &stubWriter{}
	h := NewEventHandler(notifier.New(prefs, &stubFollowers{}, writer, zap.NewNop()))

	rec := postEvent(t, h, 100, `{"action":"commentCreated","owner_id":100,"target":"User","target_id":100,"title":"t","content":"c","url":"/x"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notified":false`)
	assert.Empty(t, writer.rows)
}

func TestReportEventRejectsBadTarget(t *testing.T) {
	h := NewEventHandler(notifier.New(&stubPreferences{}, &stubFollowers{}, &stubWriter{}, zap.NewNop()))

	rec := postEvent(t, h, 100, `{"action":"newsCreated","target":"Planet","target_id":9,"title":"t"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
