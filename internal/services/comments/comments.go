package comments

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/comment"
	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
)

const (
	SortNewest = "newest"
	SortTop    = "top"

	DefaultLimit = 10
	MaxLimit     = 100
)

type Page struct {
	Limit  int
	Offset int
}

func (p Page) validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit || p.Offset < 0 {
		return apperror.Validationf("Invalid limit or offset")
	}
	return nil
}

type Service interface {
	ListTopLevel(ctx context.Context, viewer string, page Page, sort string) ([]comment.CommentView, error)
	ListReplies(ctx context.Context, parentID uint, viewer string, page Page) ([]comment.CommentView, error)
	Create(ctx context.Context, lineUserID, content string, parentID *uint) (*comment.CommentView, error)
	Update(ctx context.Context, id uint, lineUserID, content string) (*comment.CommentView, error)
	Delete(ctx context.Context, id uint, lineUserID string) error
}

type Impl struct {
	repo  comment.CommentRepository
	users users.Service
}

func New(repo comment.CommentRepository, userService users.Service) Service {
	return &Impl{repo: repo, users: userService}
}

// ValidateContent enforces 1..MaxContentLength characters.
func ValidateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n == 0 || n > comment.MaxContentLength {
		return apperror.Validationf("Content is empty or too long")
	}
	return nil
}

func orderFor(sort string) comment.Order {
	if sort == SortTop {
		return comment.OrderTop
	}
	return comment.OrderNewest
}

func (s *Impl) ListTopLevel(ctx context.Context, viewer string, page Page, sort string) ([]comment.CommentView, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}

	viewerID, err := s.users.ResolveViewer(ctx, viewer)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.ListTopLevel(ctx, viewerID, orderFor(sort), page.Limit, page.Offset)
	if err != nil {
		return nil, apperror.Internalf(err, "list comments")
	}
	if views == nil {
		views = []comment.CommentView{}
	}
	return views, nil
}

func (s *Impl) ListReplies(ctx context.Context, parentID uint, viewer string, page Page) ([]comment.CommentView, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.CommentExists(ctx, parentID)
	if err != nil {
		return nil, apperror.Internalf(err, "check parent %d", parentID)
	}
	if !exists {
		return nil, apperror.NewNotFound("Parent comment not found")
	}

	viewerID, err := s.users.ResolveViewer(ctx, viewer)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.ListReplies(ctx, parentID, viewerID, page.Limit, page.Offset)
	if err != nil {
		return nil, apperror.Internalf(err, "list replies of %d", parentID)
	}
	if views == nil {
		views = []comment.CommentView{}
	}
	return views, nil
}

func (s *Impl) Create(ctx context.Context, lineUserID, content string, parentID *uint) (*comment.CommentView, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	u, err := s.users.Resolve(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	c := &comment.Comment{
		UserID:   u.ID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrReferenceMissing) {
			return nil, apperror.NewNotFound("Parent comment not found")
		}
		return nil, apperror.Internalf(err, "create comment")
	}

	// everything derived is known at creation time
	return &comment.CommentView{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DisplayName: u.DisplayName,
		PictureURL:  u.PictureURL,
		LikeCount:   0,
		ReplyCount:  0,
		IsLiked:     false,
		IsOwner:     true,
		IsEdited:    false,
	}, nil
}

func (s *Impl) Update(ctx context.Context, id uint, lineUserID, content string) (*comment.CommentView, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	u, err := s.users.Resolve(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateOwnedContent(ctx, id, u.ID, content)
	if err != nil {
		return nil, apperror.Internalf(err, "update comment %d", id)
	}
	if !ok {
		return nil, apperror.NewForbidden("Permission denied or Comment not found")
	}

	view, err := s.repo.GetCommentView(ctx, id, &u.ID)
	if err != nil {
		return nil, apperror.Internalf(err, "reload comment %d", id)
	}
	if view == nil {
		// deleted between the update and the re-read
		return nil, apperror.NewForbidden("Permission denied or Comment not found")
	}
	return view, nil
}

func (s *Impl) Delete(ctx context.Context, id uint, lineUserID string) error {
	u, err := s.users.Resolve(ctx, lineUserID)
	if err != nil {
		return err
	}

	ok, err := s.repo.DeleteOwned(ctx, id, u.ID)
	if err != nil {
		return apperror.Internalf(err, "delete comment %d", id)
	}
	if !ok {
		return apperror.NewForbidden("Permission denied or Comment not found")
	}
	return nil
}
