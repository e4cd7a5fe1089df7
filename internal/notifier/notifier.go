package notifier

import (
	"context"
	"fmt"

	"github.com/ruislan/ktap-sub003/internal/models"
	"go.uber.org/zap"
)

// PreferenceSource supplies per-user notification settings.
type PreferenceSource interface {
	Get(ctx context.Context, userID uint) (*models.NotificationPreference, error)
	GetBatch(ctx context.Context, userIDs []uint) (map[uint]models.NotificationPreference, error)
}

// FollowerResolver returns the ids of users following a target entity.
// An unknown target id yields an empty set, not an error.
type FollowerResolver interface {
	GetAppFollowerIDs(ctx context.Context, appID uint) ([]uint, error)
	GetUserFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
}

// NotificationWriter persists notification rows. CreateBatch is
// all-or-nothing: a failure leaves no rows behind.
type NotificationWriter interface {
	Create(ctx context.Context, notification *models.Notification) error
	CreateBatch(ctx context.Context, notifications []models.Notification) (int64, error)
}

// Notifier decides who gets notified for a content event, filters the set
// against each recipient's preferences, and writes the surviving rows.
// It holds no state of its own; every call goes straight to the stores.
type Notifier struct {
	preferences   PreferenceSource
	followers     FollowerResolver
	notifications NotificationWriter
	log           *zap.Logger
}

func New(prefs PreferenceSource, followers FollowerResolver, notifications NotificationWriter, log *zap.Logger) *Notifier {
	return &Notifier{
		preferences:   prefs,
		followers:     followers,
		notifications: notifications,
		log:           log,
	}
}

// NotifySystem writes one system notification. System notices bypass
// preference filtering.
func (n *Notifier) NotifySystem(ctx context.Context, userID uint, title, content string) error {
	err := n.notifications.Create(ctx, &models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeSystem,
		Title:   title,
		Content: content,
	})
	if err != nil {
		n.log.Error("system notification write failed", zap.Uint("user_id", userID), zap.Error(err))
		return fmt.Errorf("notify system: %w", err)
	}
	return nil
}

// NotifyReaction notifies the owner of a piece of content that someone
// reacted to it. Returns false when the owner's preferences (or the lack of
// a preference row) silence the category, or when the action maps to none.
func (n *Notifier) NotifyReaction(ctx context.Context, action Action, userID uint, target string, targetID uint, title, content, url string) (bool, error) {
	category, ok := reactionCategory(action)
	if !ok {
		return false, nil
	}

	pref, err := n.preferences.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("notify reaction: load preferences: %w", err)
	}
	if !pref.Allows(category) {
		return false, nil
	}

	err = n.notifications.Create(ctx, &models.Notification{
		UserID:   userID,
		Type:     models.NotificationTypeReaction,
		Title:    title,
		Content:  content,
		URL:      url,
		Target:   target,
		TargetID: targetID,
	})
	if err != nil {
		return false, fmt.Errorf("notify reaction: %w", err)
	}

	n.log.Debug("reaction notification written",
		zap.String("action", string(action)),
		zap.Uint("user_id", userID),
	)
	return true, nil
}

// NotifyFollowing fans one content event out to every follower of the
// target whose preferences enable the action's category. The actor never
// notifies themselves. The batch write is atomic; the returned count is the
// number of rows written, which may be zero.
func (n *Notifier) NotifyFollowing(ctx context.Context, action Action, actorID uint, target string, targetID uint, title, content, url string) (int, error) {
	category, ok := followingCategory(action)
	if !ok {
		return 0, nil
	}

	followerIDs, err := n.resolveFollowers(ctx, target, targetID)
	if err != nil {
		return 0, fmt.Errorf("notify following: resolve followers: %w", err)
	}
	if len(followerIDs) == 0 {
		return 0, nil
	}

	prefs, err := n.preferences.GetBatch(ctx, followerIDs)
	if err != nil {
		return 0, fmt.Errorf("notify following: load preferences: %w", err)
	}

	batch := make([]models.Notification, 0, len(followerIDs))
	for _, id := range followerIDs {
		if id == actorID {
			continue
		}
		pref, ok := prefs[id]
		if !ok || !pref.Allows(category) {
			continue
		}
		batch = append(batch, models.Notification{
			UserID:   id,
			Type:     models.NotificationTypeFollowing,
			Title:    title,
			Content:  content,
			URL:      url,
			Target:   target,
			TargetID: targetID,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}

	written, err := n.notifications.CreateBatch(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("notify following: write batch: %w", err)
	}

	n.log.Debug("following fan-out written",
		zap.String("action", string(action)),
		zap.String("target", target),
		zap.Uint("target_id", targetID),
		zap.Int("followers", len(followerIDs)),
		zap.Int64("written", written),
	)
	return int(written), nil
}

func (n *Notifier) resolveFollowers(ctx context.Context, target string, targetID uint) ([]uint, error) {
	switch target {
	case models.TargetApp:
		return n.followers.GetAppFollowerIDs(ctx, targetID)
	case models.TargetUser:
		return n.followers.GetUserFollowerIDs(ctx, targetID)
	}
	return nil, nil
}
