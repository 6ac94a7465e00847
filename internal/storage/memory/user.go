package memory

import (
	"fmt"
	"time"

	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/VitaminP8/socialnet/models"
)

func (s *Storage) Create(username, firstName, lastName, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[username]; exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrUsernameTaken)
	}

	u := &models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  passwordHash,
	}
	u.ID = s.nextUserID
	u.CreatedAt = time.Now()
	s.nextUserID++

	s.users[u.ID] = u
	s.usernames[username] = u.ID

	cp := *u
	return &cp, nil
}

func (s *Storage) FindByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.usernames[username]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	// Возвращаем копию, чтобы вызывающий не мог менять хранимую запись в обход мьютекса
	cp := *s.users[id]
	return &cp, nil
}

func (s *Storage) UpdateProfile(username string, update user.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.usernames[username]
	if !exists {
		return fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	u := s.users[id]
	u.Education = update.Education
	u.Employment = update.Employment
	u.Music = update.Music
	u.Movie = update.Movie
	u.Nationality = update.Nationality
	u.Birthday = update.Birthday
	u.UpdatedAt = time.Now()

	return nil
}
