package janitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotificationPruner struct {
	gotKeep int
	removed int64
}

func (f *fakeNotificationPruner) DeleteOldestExcess(_ context.Context, keepPerUser int) (int64, error) {
	f.gotKeep = keepPerUser
	return f.removed, nil
}

type fakeTimelinePruner struct {
	entriesCutoff   time.Time
	blacklistCutoff time.Time
}

func (f *fakeTimelinePruner) DeleteEntriesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.entriesCutoff = cutoff
	return 0, nil
}

func (f *fakeTimelinePruner) DeleteBlacklistBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.blacklistCutoff = cutoff
	return 0, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 1, 4, 0, 0, 0, time.UTC)
}

func TestExpiredNotificationsTaskPassesRetentionMax(t *testing.T) {
	t.Parallel()

	pruner := &fakeNotificationPruner{removed: 12}
	task := ExpiredNotificationsTask(pruner, 10, zap.NewNop())

	removed, err := task.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
	assert.Equal(t, 10, pruner.gotKeep)
}

func TestExpiredTimelineTaskCutoff(t *testing.T) {
	t.Parallel()

	pruner := &fakeTimelinePruner{}
	task := ExpiredTimelineTask(pruner, fixedNow, zap.NewNop())

	_, err := task.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixedNow().Add(-300*24*time.Hour), pruner.entriesCutoff)
}

func TestExpiredTokensTaskCutoff(t *testing.T) {
	t.Parallel()

	pruner := &fakeTimelinePruner{}
	task := ExpiredTokensTask(pruner, 24*time.Hour, fixedNow, zap.NewNop())

	_, err := task.Run(context.Background())
	require.NoError(t, err)

	// A token blacklisted 25h ago falls before the cutoff, one from 23h
	// ago does not. Deletion is strictly-before, so the boundary survives.
	cutoff := pruner.blacklistCutoff
	assert.Equal(t, fixedNow().Add(-24*time.Hour), cutoff)
	assert.True(t, fixedNow().Add(-25*time.Hour).Before(cutoff))
	assert.False(t, fixedNow().Add(-23*time.Hour).Before(cutoff))
}

func TestRunTaskContainsPanic(t *testing.T) {
	t.Parallel()

	s := NewScheduler(zap.NewNop())

	panicking := Task{
		Name: "panicking",
		Spec: "@daily",
		Run: func(context.Context) (int64, error) {
			panic("boom")
		},
	}
	siblingRan := false
	sibling := Task{
		Name: "sibling",
		Spec: "@daily",
		Run: func(context.Context) (int64, error) {
			siblingRan = true
			return 0, nil
		},
	}

	assert.NotPanics(t, func() { s.runTask(panicking) })
	s.runTask(sibling)
	assert.True(t, siblingRan)
}

func TestRunTaskContainsError(t *testing.T) {
	t.Parallel()

	s := NewScheduler(zap.NewNop())
	failing := Task{
		Name: "failing",
		Spec: "@daily",
		Run: func(context.Context) (int64, error) {
			return 0, errors.New("store unreachable")
		},
	}

	assert.NotPanics(t, func() { s.runTask(failing) })
}

func TestSchedulerLifecycle(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{}, 8)
	s := NewScheduler(zap.NewNop(), Task{
		Name: "noop",
		Spec: "@daily",
		Run: func(context.Context) (int64, error) {
			ran <- struct{}{}
			return 0, nil
		},
	})

	require.NoError(t, s.Start())
	s.Stop()

	select {
	case <-ran:
		t.Fatal("daily task should not have fired during the test window")
	default:
	}
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	t.Parallel()

	s := NewScheduler(zap.NewNop(), Task{
		Name: "broken",
		Spec: "not a cron spec",
		Run:  func(context.Context) (int64, error) { return 0, nil },
	})
	assert.Error(t, s.Start())
}
