package sqlite

import (
	"fmt"

	"github.com/VitaminP8/socialnet/internal/comment"
	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
)

type CommentSqliteStorage struct {
	db *gorm.DB
}

func NewCommentSqliteStorage(db *gorm.DB) *CommentSqliteStorage {
	return &CommentSqliteStorage{db: db}
}

func (s *CommentSqliteStorage) CreateComment(postID, authorID uint, text string) (*models.Comment, error) {
	// Сначала убеждаемся, что пост существует - вставка комментария к
	// несуществующему посту должна быть явной ошибкой "not found"
	var p models.Post
	err := s.db.First(&p, postID).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("post %d: %w", postID, post.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	c := &models.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: text,
	}

	err = s.db.Create(c).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return c, nil
}

func (s *CommentSqliteStorage) Comments(postID uint) ([]*comment.CommentWithAuthor, error) {
	var results []*comment.CommentWithAuthor
	err := s.db.Raw(`
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		       u.username, u.first_name, u.last_name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ? AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC, c.id DESC`,
		postID).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}
	return results, nil
}
