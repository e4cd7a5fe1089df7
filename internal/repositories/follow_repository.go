package repositories

import (
	"context"
	"fmt"

	"github.com/ruislan/ktap-sub003/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge operations.
// Follower resolution is a single bulk query per call; callers get the full
// id set at once regardless of follower count.
type FollowRepository interface {
	FollowApp(ctx context.Context, followerID, appID uint) error
	UnfollowApp(ctx context.Context, followerID, appID uint) error
	FollowUser(ctx context.Context, followerID, followingID uint) error
	UnfollowUser(ctx context.Context, followerID, followingID uint) error
	GetAppFollowerIDs(ctx context.Context, appID uint) ([]uint, error)
	GetUserFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) FollowApp(ctx context.Context, followerID, appID uint) error {
	return r.db.WithContext(ctx).Create(&models.FollowApp{FollowerID: followerID, AppID: appID}).Error
}

func (r *PostgresFollowRepository) UnfollowApp(ctx context.Context, followerID, appID uint) error {
	res := r.db.WithContext(ctx).Where("follower_id = ? AND app_id = ?", followerID, appID).Delete(&models.FollowApp{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow relationship not found")
	}
	return nil
}

func (r *PostgresFollowRepository) FollowUser(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).Create(&models.FollowUser{FollowerID: followerID, FollowingID: followingID}).Error
}

func (r *PostgresFollowRepository) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	res := r.db.WithContext(ctx).Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.FollowUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow relationship not found")
	}
	return nil
}

func (r *PostgresFollowRepository) GetAppFollowerIDs(ctx context.Context, appID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.FollowApp{}).Where("app_id = ?", appID).Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetUserFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.FollowUser{}).Where("following_id = ?", userID).Pluck("follower_id", &ids).Error
	return ids, err
}
