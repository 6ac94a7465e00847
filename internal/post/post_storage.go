package post

import (
	"errors"
	"time"

	"github.com/VitaminP8/socialnet/models"
)

// ErrNotFound - пост с таким id не существует
var ErrNotFound = errors.New("post not found")

// StreamPost - пост в ленте вместе с автором и количеством комментариев
type StreamPost struct {
	ID           uint
	UserID       uint
	Content      string
	Image        string
	CreatedAt    time.Time
	Username     string
	FirstName    string
	LastName     string
	CommentCount int
}

type PostStorage interface {
	CreatePost(authorID uint, content, image string) (*models.Post, error)
	GetPostByID(id uint) (*models.Post, error)
	// Stream возвращает посты пользователя и всех его друзей (ребро в любом
	// направлении), новые сверху
	Stream(userID uint) ([]*StreamPost, error)
}
