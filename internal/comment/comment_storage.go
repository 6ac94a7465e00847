package comment

import (
	"time"

	"github.com/VitaminP8/socialnet/models"
)

// CommentWithAuthor - комментарий вместе с данными автора для страницы комментариев
type CommentWithAuthor struct {
	ID        uint
	PostID    uint
	UserID    uint
	Content   string
	CreatedAt time.Time
	Username  string
	FirstName string
	LastName  string
}

type CommentStorage interface {
	// CreateComment возвращает post.ErrNotFound, если поста не существует
	CreateComment(postID, authorID uint, text string) (*models.Comment, error)
	Comments(postID uint) ([]*CommentWithAuthor, error)
}
