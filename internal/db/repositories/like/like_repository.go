package like

import (
	"context"

	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/comment"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=like_repository.go -destination=../mocks/mock_like_repository.go -package=mocks

type LikeRepository interface {
	// ToggleLike flips the like of userID on commentID and returns the new
	// state with the comment's like total. A missing comment yields ErrNotFound.
	ToggleLike(ctx context.Context, commentID, userID uint) (liked bool, count int64, err error)
}

type LikeRepositoryImpl struct {
	db *db.DB
}

func NewLikeRepository(database *db.DB) LikeRepository {
	return &LikeRepositoryImpl{db: database}
}

// ToggleLike runs inside one transaction holding a row lock on the comment, so
// concurrent togglers of the same comment are serialised and the
// delete-or-insert decision is never made on a stale read.
func (r *LikeRepositoryImpl) ToggleLike(ctx context.Context, commentID, userID uint) (bool, int64, error) {
	var (
		liked bool
		count int64
	)

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&comment.Comment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", commentID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return repositories.ErrNotFound
		}

		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&Like{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&Like{}).
			Where("comment_id = ?", commentID).
			Count(&count).Error
	})
	if err != nil {
		return false, 0, repositories.Translate(err)
	}
	return liked, count, nil
}
