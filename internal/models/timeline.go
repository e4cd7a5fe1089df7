package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetTokenBlacklist marks timeline rows that carry a revoked auth token
// instead of user activity. The blacklist shares the timeline collection.
const TargetTokenBlacklist = "TokenBlacklist"

// TimelineEntry is an append-only activity record (MongoDB). Entries are
// never updated; they are pruned by age from the janitor.
type TimelineEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    uint               `json:"user_id" bson:"user_id"`
	Target    string             `json:"target" bson:"target"`
	TargetID  uint               `json:"target_id,omitempty" bson:"target_id,omitempty"`
	Token     string             `json:"-" bson:"token,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
