package repositories

import (
	"context"
	"errors"

	"github.com/ruislan/ktap-sub003/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository defines the interface for notification preference lookups
type PreferenceRepository interface {
	Get(ctx context.Context, userID uint) (*models.NotificationPreference, error)
	GetBatch(ctx context.Context, userIDs []uint) (map[uint]models.NotificationPreference, error)
	Upsert(ctx context.Context, pref *models.NotificationPreference) error
}

type postgresPreferenceRepository struct {
	db *gorm.DB
}

func NewPostgresPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &postgresPreferenceRepository{db: db}
}

// Get returns nil without error when the user never saved preferences.
func (r *postgresPreferenceRepository) Get(ctx context.Context, userID uint) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// GetBatch loads preferences for all given users in one query. Users without
// a row are simply absent from the returned map.
func (r *postgresPreferenceRepository) GetBatch(ctx context.Context, userIDs []uint) (map[uint]models.NotificationPreference, error) {
	result := make(map[uint]models.NotificationPreference, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var prefs []models.NotificationPreference
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&prefs).Error; err != nil {
		return nil, err
	}
	for _, p := range prefs {
		result[p.UserID] = p
	}
	return result, nil
}

func (r *postgresPreferenceRepository) Upsert(ctx context.Context, pref *models.NotificationPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"following_app_changed",
			"following_user_changed",
			"reaction_replied",
			"reaction_thumbed",
			"reaction_gift_sent",
		}),
	}).Create(pref).Error
}
