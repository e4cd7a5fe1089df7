package notifier

import "github.com/ruislan/ktap-sub003/internal/models"

// Action identifies the content event being reported to the dispatcher.
type Action string

const (
	ActionNewsCreated       Action = "newsCreated"
	ActionReviewCreated     Action = "reviewCreated"
	ActionCommentCreated    Action = "commentCreated"
	ActionDiscussionCreated Action = "discussionCreated"
	ActionPostCreated       Action = "postCreated"
	ActionReviewThumbed     Action = "reviewThumbed"
	ActionPostThumbed       Action = "postThumbed"
	ActionReviewGiftSent    Action = "reviewGiftSent"
	ActionPostGiftSent      Action = "postGiftSent"
)

// reactionCategory maps an action to the preference category gating a
// reaction notification. Actions outside the table produce no notification.
func reactionCategory(action Action) (string, bool) {
	switch action {
	case ActionPostCreated, ActionCommentCreated:
		return models.CategoryReactionReplied, true
	case ActionReviewThumbed, ActionPostThumbed:
		return models.CategoryReactionThumbed, true
	case ActionReviewGiftSent, ActionPostGiftSent:
		return models.CategoryReactionGiftSent, true
	}
	return "", false
}

// followingCategory maps an action to the preference category gating a
// following fan-out. News is app activity; everything else is user activity.
func followingCategory(action Action) (string, bool) {
	switch action {
	case ActionDiscussionCreated, ActionPostCreated, ActionCommentCreated, ActionReviewCreated:
		return models.CategoryFollowingUserChanged, true
	case ActionNewsCreated:
		return models.CategoryFollowingAppChanged, true
	}
	return "", false
}
