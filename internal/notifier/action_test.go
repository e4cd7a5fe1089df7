package notifier

import (
	"testing"

	"github.com/ruislan/ktap-sub003/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReactionCategoryMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		action   Action
		category string
		ok       bool
	}{
		{ActionPostCreated, models.CategoryReactionReplied, true},
		{ActionCommentCreated, models.CategoryReactionReplied, true},
		{ActionReviewThumbed, models.CategoryReactionThumbed, true},
		{ActionPostThumbed, models.CategoryReactionThumbed, true},
		{ActionReviewGiftSent, models.CategoryReactionGiftSent, true},
		{ActionPostGiftSent, models.CategoryReactionGiftSent, true},
		{ActionNewsCreated, "", false},
		{ActionReviewCreated, "", false},
		{ActionDiscussionCreated, "", false},
		{Action("unknown"), "", false},
		{Action(""), "", false},
	}
	for _, tc := range cases {
		category, ok := reactionCategory(tc.action)
		assert.Equal(t, tc.ok, ok, "action %q", tc.action)
		assert.Equal(t, tc.category, category, "action %q", tc.action)
	}
}

func TestFollowingCategoryMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		action   Action
		category string
		ok       bool
	}{
		{ActionDiscussionCreated, models.CategoryFollowingUserChanged, true},
		{ActionPostCreated, models.CategoryFollowingUserChanged, true},
		{ActionCommentCreated, models.CategoryFollowingUserChanged, true},
		{ActionReviewCreated, models.CategoryFollowingUserChanged, true},
		{ActionNewsCreated, models.CategoryFollowingAppChanged, true},
		{ActionReviewThumbed, "", false},
		{ActionPostGiftSent, "", false},
		{Action("unknown"), "", false},
	}
	for _, tc := range cases {
		category, ok := followingCategory(tc.action)
		assert.Equal(t, tc.ok, ok, "action %q", tc.action)
		assert.Equal(t, tc.category, category, "action %q", tc.action)
	}
}

func TestPreferenceAllows(t *testing.T) {
	t.Parallel()

	var missing *models.NotificationPreference
	for _, category := range []string{
		models.CategoryFollowingAppChanged,
		models.CategoryFollowingUserChanged,
		models.CategoryReactionReplied,
		models.CategoryReactionThumbed,
		models.CategoryReactionGiftSent,
	} {
		assert.False(t, missing.Allows(category), "missing row should disable %q", category)
	}

	pref := &models.NotificationPreference{ReactionThumbed: true}
	assert.True(t, pref.Allows(models.CategoryReactionThumbed))
	assert.False(t, pref.Allows(models.CategoryReactionReplied))
	assert.False(t, pref.Allows("bogus"))
}
