package repositories

import (
	"context"
	"time"

	"github.com/ruislan/ktap-sub003/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TimelineRepository defines the interface for timeline operations. The
// collection holds both user activity entries and revoked-token rows
// (target = TokenBlacklist); the age-based deletes keep the two apart.
type TimelineRepository interface {
	Append(ctx context.Context, entry *models.TimelineEntry) error
	BlacklistToken(ctx context.Context, userID uint, token string) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteBlacklistBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type timelineRepository struct {
	collection *mongo.Collection
}

func NewTimelineRepository(mongoDB *mongo.Database) TimelineRepository {
	return &timelineRepository{collection: mongoDB.Collection("timeline")}
}

func (r *timelineRepository) Append(ctx context.Context, entry *models.TimelineEntry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *timelineRepository) BlacklistToken(ctx context.Context, userID uint, token string) error {
	return r.Append(ctx, &models.TimelineEntry{
		UserID: userID,
		Target: models.TargetTokenBlacklist,
		Token:  token,
	})
}

func (r *timelineRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"target": models.TargetTokenBlacklist,
		"token":  token,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteEntriesBefore removes activity entries strictly older than cutoff.
// Rows created exactly at the cutoff are retained.
func (r *timelineRepository) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{
		"target":     bson.M{"$ne": models.TargetTokenBlacklist},
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteBlacklistBefore removes revoked-token rows strictly older than cutoff.
func (r *timelineRepository) DeleteBlacklistBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{
		"target":     models.TargetTokenBlacklist,
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
