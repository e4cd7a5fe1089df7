package models

import "time"

// Notification types
const (
	NotificationTypeSystem    = "system"
	NotificationTypeFollowing = "following"
	NotificationTypeReaction  = "reaction"
)

// Notification target kinds
const (
	TargetApp  = "App"
	TargetUser = "User"
)

// Notification represents a per-user notification row (PostgreSQL)
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"` // recipient
	Type      string    `json:"type" gorm:"size:20;index"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	URL       string    `json:"url"`
	Target    string    `json:"target,omitempty" gorm:"size:20"` // App or User
	TargetID  uint      `json:"target_id,omitempty"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
