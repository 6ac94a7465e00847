package memory

import (
	"sync"

	"github.com/VitaminP8/socialnet/models"
)

// Storage - общее in-memory хранилище (реализует все четыре интерфейса).
// Используется для локального запуска без SQLite и в тестах хендлеров.
type Storage struct {
	mu            sync.Mutex
	users         map[uint]*models.User
	usernames     map[string]uint // username -> id
	posts         map[uint]*models.Post
	comments      map[uint]*models.Comment
	friends       map[[2]uint]bool // [userID, friendID] -> ребро существует
	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
}

func NewStorage() *Storage {
	return &Storage{
		users:         make(map[uint]*models.User),
		usernames:     make(map[string]uint),
		posts:         make(map[uint]*models.Post),
		comments:      make(map[uint]*models.Comment),
		friends:       make(map[[2]uint]bool),
		nextUserID:    1,
		nextPostID:    1,
		nextCommentID: 1,
	}
}
