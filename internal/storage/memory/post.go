package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
)

func (s *Storage) CreatePost(authorID uint, content, image string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Post{
		UserID:  authorID,
		Content: content,
		Image:   image,
	}
	p.ID = s.nextPostID
	p.CreatedAt = time.Now()
	s.nextPostID++

	s.posts[p.ID] = p

	cp := *p
	return &cp, nil
}

func (s *Storage) GetPostByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %d: %w", id, post.ErrNotFound)
	}

	cp := *p
	return &cp, nil
}

func (s *Storage) Stream(userID uint) ([]*post.StreamPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Собираем множество видимых авторов: сам пользователь + друзья в обоих направлениях
	visible := map[uint]bool{userID: true}
	for edge := range s.friends {
		if edge[0] == userID {
			visible[edge[1]] = true
		}
		if edge[1] == userID {
			visible[edge[0]] = true
		}
	}

	var results []*post.StreamPost
	for _, p := range s.posts {
		if !visible[p.UserID] {
			continue
		}

		author, exists := s.users[p.UserID]
		if !exists {
			continue
		}

		count := 0
		for _, c := range s.comments {
			if c.PostID == p.ID {
				count++
			}
		}

		results = append(results, &post.StreamPost{
			ID:           p.ID,
			UserID:       p.UserID,
			Content:      p.Content,
			Image:        p.Image,
			CreatedAt:    p.CreatedAt,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			CommentCount: count,
		})
	}

	// Новые сверху, при равном времени - по убыванию id
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID > results[j].ID
	})

	return results, nil
}
