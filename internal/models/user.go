package models

import (
	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePreferenceRequest struct {
	FollowingAppChanged  *bool `json:"following_app_changed" validate:"required"`
	FollowingUserChanged *bool `json:"following_user_changed" validate:"required"`
	ReactionReplied      *bool `json:"reaction_replied" validate:"required"`
	ReactionThumbed      *bool `json:"reaction_thumbed" validate:"required"`
	ReactionGiftSent     *bool `json:"reaction_gift_sent" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
