package janitor

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// timelineRetention is how long activity entries are kept.
const timelineRetention = 300 * 24 * time.Hour

// Daily schedules, staggered so the deletes never contend.
const (
	specExpiredNotifications = "10 4 * * *"
	specExpiredTimeline      = "20 4 * * *"
	specExpiredTokens        = "30 4 * * *"
)

// NotificationPruner trims each user's notification list to a maximum size.
type NotificationPruner interface {
	DeleteOldestExcess(ctx context.Context, keepPerUser int) (int64, error)
}

// TimelinePruner deletes timeline and revoked-token rows by age.
type TimelinePruner interface {
	DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteBlacklistBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ExpiredNotificationsTask keeps only the newest keepPerUser notifications
// for each recipient.
func ExpiredNotificationsTask(repo NotificationPruner, keepPerUser int, log *zap.Logger) Task {
	return Task{
		Name: "expired-notifications",
		Spec: specExpiredNotifications,
		Run: func(ctx context.Context) (int64, error) {
			log.Info("pruning notifications", zap.Int("keep_per_user", keepPerUser))
			return repo.DeleteOldestExcess(ctx, keepPerUser)
		},
	}
}

// ExpiredTimelineTask deletes activity entries older than the retention
// window. The now func is injectable for tests.
func ExpiredTimelineTask(repo TimelinePruner, now func() time.Time, log *zap.Logger) Task {
	return Task{
		Name: "expired-timeline",
		Spec: specExpiredTimeline,
		Run: func(ctx context.Context) (int64, error) {
			cutoff := now().Add(-timelineRetention)
			log.Info("pruning timeline", zap.Time("cutoff", cutoff))
			return repo.DeleteEntriesBefore(ctx, cutoff)
		},
	}
}

// ExpiredTokensTask deletes blacklisted tokens older than the token validity
// window; such tokens have expired on their own and no longer need denying.
func ExpiredTokensTask(repo TimelinePruner, tokenValidFor time.Duration, now func() time.Time, log *zap.Logger) Task {
	return Task{
		Name: "expired-tokens",
		Spec: specExpiredTokens,
		Run: func(ctx context.Context) (int64, error) {
			cutoff := now().Add(-tokenValidFor)
			log.Info("pruning token blacklist", zap.Time("cutoff", cutoff))
			return repo.DeleteBlacklistBefore(ctx, cutoff)
		},
	}
}
