package models

import "time"

// FollowApp represents a user following a game/application
type FollowApp struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_app"`
	AppID      uint      `json:"app_id" gorm:"index;uniqueIndex:idx_follower_app"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowUser represents a user following another user
type FollowUser struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_user"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_user"`
	CreatedAt   time.Time `json:"created_at"`
}
