package user

import (
	"context"
	"errors"

	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_repository.go -destination=../mocks/mock_user_repository.go -package=mocks

type UserRepository interface {
	// UpsertUser inserts u or, when its line_user_id already exists, refreshes
	// the profile fields. u is overwritten with the stored row.
	UpsertUser(ctx context.Context, u *User) error
	// GetUserByLineUserID returns nil, nil when no user has that id.
	GetUserByLineUserID(ctx context.Context, lineUserID string) (*User, error)
}

type UserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database}
}

func (r *UserRepositoryImpl) UpsertUser(ctx context.Context, u *User) error {
	err := r.db.DB.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "line_user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"display_name", "picture_url", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(u).Error
	return repositories.Translate(err)
}

func (r *UserRepositoryImpl) GetUserByLineUserID(ctx context.Context, lineUserID string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).
		Where("line_user_id = ?", lineUserID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
