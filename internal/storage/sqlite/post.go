package sqlite

import (
	"fmt"

	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
)

type PostSqliteStorage struct {
	db *gorm.DB
}

func NewPostSqliteStorage(db *gorm.DB) *PostSqliteStorage {
	return &PostSqliteStorage{db: db}
}

func (s *PostSqliteStorage) CreatePost(authorID uint, content, image string) (*models.Post, error) {
	p := &models.Post{
		UserID:  authorID,
		Content: content,
		Image:   image,
	}

	err := s.db.Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return p, nil
}

func (s *PostSqliteStorage) GetPostByID(id uint) (*models.Post, error) {
	var p models.Post
	err := s.db.First(&p, id).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("post %d: %w", id, post.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}
	return &p, nil
}

// Stream - лента пользователя: его собственные посты плюс посты друзей
// (ребро дружбы учитывается в обоих направлениях), новые сверху.
// При равном времени создания старший id выше - порядок детерминированный.
func (s *PostSqliteStorage) Stream(userID uint) ([]*post.StreamPost, error) {
	var results []*post.StreamPost
	err := s.db.Raw(`
		SELECT p.id, p.user_id, p.content, p.image, p.created_at,
		       u.username, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM comments c
		        WHERE c.post_id = p.id AND c.deleted_at IS NULL) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.deleted_at IS NULL
		  AND (p.user_id = ?
		       OR p.user_id IN (SELECT friend_id FROM friends WHERE user_id = ?)
		       OR p.user_id IN (SELECT user_id FROM friends WHERE friend_id = ?))
		ORDER BY p.created_at DESC, p.id DESC`,
		userID, userID, userID).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("could not get stream posts: %w", err)
	}
	return results, nil
}
