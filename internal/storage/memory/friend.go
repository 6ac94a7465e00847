package memory

import (
	"fmt"

	"github.com/VitaminP8/socialnet/internal/friend"
	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/VitaminP8/socialnet/models"
)

func (s *Storage) AddFriend(userID uint, friendUsername string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	friendID, exists := s.usernames[friendUsername]
	if !exists {
		return fmt.Errorf("user %s: %w", friendUsername, user.ErrNotFound)
	}

	if friendID == userID {
		return friend.ErrSelfFriend
	}

	if s.friends[[2]uint{userID, friendID}] || s.friends[[2]uint{friendID, userID}] {
		return friend.ErrAlreadyFriends
	}

	s.friends[[2]uint{userID, friendID}] = true
	return nil
}

func (s *Storage) Friends(userID uint) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []*models.User
	for edge := range s.friends {
		if edge[0] != userID {
			continue
		}
		if edge[1] == userID {
			continue
		}
		if u, exists := s.users[edge[1]]; exists {
			cp := *u
			results = append(results, &cp)
		}
	}

	return results, nil
}
