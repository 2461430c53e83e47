package users

import (
	"context"
	"strings"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/user"
)

type LoginInput struct {
	LineUserID  string
	DisplayName string
	PictureURL  string
}

type Service interface {
	// Login upserts the user keyed by its external identity.
	Login(ctx context.Context, in LoginInput) (*user.User, error)
	// Resolve returns the user for lineUserID, Unauthorized when unknown or empty.
	Resolve(ctx context.Context, lineUserID string) (*user.User, error)
	// ResolveViewer is Resolve for viewer-scoped reads: an empty id is an
	// anonymous viewer (nil, nil), an unknown id is still Unauthorized.
	ResolveViewer(ctx context.Context, lineUserID string) (*uint, error)
}

type Impl struct {
	repo user.UserRepository
}

func New(repo user.UserRepository) Service {
	return &Impl{repo: repo}
}

func (s *Impl) Login(ctx context.Context, in LoginInput) (*user.User, error) {
	id := strings.TrimSpace(in.LineUserID)
	if id == "" {
		return nil, apperror.Validationf("Missing line_user_id")
	}

	u := &user.User{
		LineUserID:  id,
		DisplayName: in.DisplayName,
		PictureURL:  in.PictureURL,
	}
	if err := s.repo.UpsertUser(ctx, u); err != nil {
		return nil, apperror.Internalf(err, "upsert user %s", id)
	}
	return u, nil
}

func (s *Impl) Resolve(ctx context.Context, lineUserID string) (*user.User, error) {
	id := strings.TrimSpace(lineUserID)
	if id == "" {
		return nil, apperror.NewUnauthorized("User not found")
	}

	u, err := s.repo.GetUserByLineUserID(ctx, id)
	if err != nil {
		return nil, apperror.Internalf(err, "lookup user %s", id)
	}
	if u == nil {
		return nil, apperror.NewUnauthorized("User not found")
	}
	return u, nil
}

func (s *Impl) ResolveViewer(ctx context.Context, lineUserID string) (*uint, error) {
	if strings.TrimSpace(lineUserID) == "" {
		return nil, nil
	}
	u, err := s.Resolve(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	return &u.ID, nil
}
