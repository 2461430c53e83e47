package comment

import (
	"context"
	"errors"

	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories"
	"gorm.io/gorm"
)

//go:generate mockgen -source=comment_repository.go -destination=../mocks/mock_comment_repository.go -package=mocks

type CommentRepository interface {
	// CreateComment inserts c with created_at = updated_at = NOW() and fills in
	// the generated columns. A missing parent yields ErrReferenceMissing.
	CreateComment(ctx context.Context, c *Comment) error
	CommentExists(ctx context.Context, id uint) (bool, error)
	// GetCommentView returns nil, nil when the comment does not exist.
	GetCommentView(ctx context.Context, id uint, viewerID *uint) (*CommentView, error)
	ListTopLevel(ctx context.Context, viewerID *uint, order Order, limit, offset int) ([]CommentView, error)
	ListReplies(ctx context.Context, parentID uint, viewerID *uint, limit, offset int) ([]CommentView, error)

	// UpdateOwnedContent and DeleteOwned only touch the row when userID owns it.
	// false means no row matched, whether missing or owned by someone else.
	UpdateOwnedContent(ctx context.Context, id, userID uint, content string) (bool, error)
	DeleteOwned(ctx context.Context, id, userID uint) (bool, error)
}

type CommentRepositoryImpl struct {
	db *db.DB
}

func NewCommentRepository(database *db.DB) CommentRepository {
	return &CommentRepositoryImpl{db: database}
}

/*
VIEW QUERY
*/

const viewColumns = `
	c.id, c.parent_id, c.content, c.created_at, c.updated_at,
	u.display_name, u.picture_url,
	(SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.id) AS like_count,
	(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id) AS reply_count,
	EXISTS(SELECT 1 FROM likes l WHERE l.comment_id = c.id AND l.user_id = @viewer) AS is_liked,
	COALESCE(c.user_id = @viewer, FALSE) AS is_owner,
	(c.created_at < c.updated_at) AS is_edited`

// replies are one level deep, so their reply_count is fixed at zero
const replyViewColumns = `
	c.id, c.parent_id, c.content, c.created_at, c.updated_at,
	u.display_name, u.picture_url,
	(SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.id) AS like_count,
	0 AS reply_count,
	EXISTS(SELECT 1 FROM likes l WHERE l.comment_id = c.id AND l.user_id = @viewer) AS is_liked,
	COALESCE(c.user_id = @viewer, FALSE) AS is_owner,
	(c.created_at < c.updated_at) AS is_edited`

func (r *CommentRepositoryImpl) views(ctx context.Context, columns string, viewerID *uint) *gorm.DB {
	return r.db.DB.WithContext(ctx).
		Table("comments AS c").
		Select(columns, map[string]interface{}{"viewer": repositories.ViewerArg(viewerID)}).
		Joins("JOIN users u ON u.id = c.user_id")
}

/*
CRUD
*/

func (r *CommentRepositoryImpl) CreateComment(ctx context.Context, c *Comment) error {
	err := r.db.DB.WithContext(ctx).Raw(
		`INSERT INTO comments (user_id, parent_id, content, created_at, updated_at)
		 VALUES (?, ?, ?, NOW(), NOW())
		 RETURNING id, user_id, parent_id, content, created_at, updated_at`,
		c.UserID, c.ParentID, c.Content,
	).Scan(c).Error
	return repositories.Translate(err)
}

func (r *CommentRepositoryImpl) CommentExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&Comment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommentRepositoryImpl) GetCommentView(ctx context.Context, id uint, viewerID *uint) (*CommentView, error) {
	var v CommentView
	err := r.views(ctx, viewColumns, viewerID).
		Where("c.id = ?", id).
		Take(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *CommentRepositoryImpl) ListTopLevel(ctx context.Context, viewerID *uint, order Order, limit, offset int) ([]CommentView, error) {
	var views []CommentView
	if err := r.views(ctx, viewColumns, viewerID).
		Where("c.parent_id IS NULL").
		Order(order.clause()).
		Limit(limit).
		Offset(offset).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *CommentRepositoryImpl) ListReplies(ctx context.Context, parentID uint, viewerID *uint, limit, offset int) ([]CommentView, error) {
	var views []CommentView
	if err := r.views(ctx, replyViewColumns, viewerID).
		Where("c.parent_id = ?", parentID).
		Order("c.created_at ASC, c.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

/*
OWNER-SCOPED MUTATIONS
*/

func (r *CommentRepositoryImpl) UpdateOwnedContent(ctx context.Context, id, userID uint, content string) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Model(&Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, repositories.Translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CommentRepositoryImpl) DeleteOwned(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
