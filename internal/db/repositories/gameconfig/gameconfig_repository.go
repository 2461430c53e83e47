package gameconfig

import (
	"context"
	"errors"

	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=gameconfig_repository.go -destination=../mocks/mock_gameconfig_repository.go -package=mocks

type GameConfigRepository interface {
	// GetConfig returns nil, nil when the row has not been seeded.
	GetConfig(ctx context.Context) (*GameConfig, error)
	// SaveConfig writes every field of cfg onto the row with ConfigID,
	// creating it when absent, and refreshes cfg from the stored row.
	SaveConfig(ctx context.Context, cfg *GameConfig) error
	// EnsureDefaultConfig inserts the default row unless one exists.
	EnsureDefaultConfig(ctx context.Context) error
}

type GameConfigRepositoryImpl struct {
	db *db.DB
}

func NewGameConfigRepository(database *db.DB) GameConfigRepository {
	return &GameConfigRepositoryImpl{db: database}
}

func (r *GameConfigRepositoryImpl) GetConfig(ctx context.Context) (*GameConfig, error) {
	var cfg GameConfig
	err := r.db.DB.WithContext(ctx).Where("id = ?", ConfigID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *GameConfigRepositoryImpl) SaveConfig(ctx context.Context, cfg *GameConfig) error {
	cfg.ID = ConfigID
	return r.db.DB.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"start_num", "end_num", "special_num", "magic_word",
					"aho_text", "aho_image_url", "aho_sound_url",
				}),
			},
			clause.Returning{},
		).
		Create(cfg).Error
}

func (r *GameConfigRepositoryImpl) EnsureDefaultConfig(ctx context.Context) error {
	return r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(DefaultConfig()).Error
}
