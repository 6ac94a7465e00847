package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/VitaminP8/socialnet/internal/comment"
	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
)

func (s *Storage) CreateComment(postID, authorID uint, text string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[postID]; !exists {
		return nil, fmt.Errorf("post %d: %w", postID, post.ErrNotFound)
	}

	c := &models.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: text,
	}
	c.ID = s.nextCommentID
	c.CreatedAt = time.Now()
	s.nextCommentID++

	s.comments[c.ID] = c

	cp := *c
	return &cp, nil
}

func (s *Storage) Comments(postID uint) ([]*comment.CommentWithAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []*comment.CommentWithAuthor
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}

		author, exists := s.users[c.UserID]
		if !exists {
			continue
		}

		results = append(results, &comment.CommentWithAuthor{
			ID:        c.ID,
			PostID:    c.PostID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Username:  author.Username,
			FirstName: author.FirstName,
			LastName:  author.LastName,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID > results[j].ID
	})

	return results, nil
}
