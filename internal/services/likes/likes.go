package likes

import (
	"context"
	"errors"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/like"
	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
)

type Result struct {
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}

type Service interface {
	Toggle(ctx context.Context, commentID uint, lineUserID string) (Result, error)
}

type Impl struct {
	repo  like.LikeRepository
	users users.Service
}

func New(repo like.LikeRepository, userService users.Service) Service {
	return &Impl{repo: repo, users: userService}
}

func (s *Impl) Toggle(ctx context.Context, commentID uint, lineUserID string) (Result, error) {
	u, err := s.users.Resolve(ctx, lineUserID)
	if err != nil {
		return Result{}, err
	}

	liked, count, err := s.repo.ToggleLike(ctx, commentID, u.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrReferenceMissing) {
			return Result{}, apperror.NewNotFound("Comment not found")
		}
		return Result{}, apperror.Internalf(err, "toggle like on %d", commentID)
	}

	return Result{IsLiked: liked, LikeCount: count}, nil
}
