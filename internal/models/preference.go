package models

// Notification preference categories
const (
	CategoryFollowingAppChanged  = "followingAppChanged"
	CategoryFollowingUserChanged = "followingUserChanged"
	CategoryReactionReplied      = "reactionReplied"
	CategoryReactionThumbed      = "reactionThumbed"
	CategoryReactionGiftSent     = "reactionGiftSent"
)

// NotificationPreference holds a user's per-category notification toggles.
// Each category is an explicit column so a missing row or field is an
// unambiguous false, not a loosely-typed blob lookup.
type NotificationPreference struct {
	ID                   uint `json:"-" gorm:"primaryKey"`
	UserID               uint `json:"user_id" gorm:"uniqueIndex"`
	FollowingAppChanged  bool `json:"following_app_changed"`
	FollowingUserChanged bool `json:"following_user_changed"`
	ReactionReplied      bool `json:"reaction_replied"`
	ReactionThumbed      bool `json:"reaction_thumbed"`
	ReactionGiftSent     bool `json:"reaction_gift_sent"`
}

// Allows reports whether the given category is enabled. A nil receiver
// means the user never saved preferences, which disables every category.
func (p *NotificationPreference) Allows(category string) bool {
	if p == nil {
		return false
	}
	switch category {
	case CategoryFollowingAppChanged:
		return p.FollowingAppChanged
	case CategoryFollowingUserChanged:
		return p.FollowingUserChanged
	case CategoryReactionReplied:
		return p.ReactionReplied
	case CategoryReactionThumbed:
		return p.ReactionThumbed
	case CategoryReactionGiftSent:
		return p.ReactionGiftSent
	}
	return false
}
