package sqlite

import (
	"fmt"

	"github.com/VitaminP8/socialnet/internal/friend"
	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
)

type FriendSqliteStorage struct {
	db *gorm.DB
}

func NewFriendSqliteStorage(db *gorm.DB) *FriendSqliteStorage {
	return &FriendSqliteStorage{db: db}
}

func (s *FriendSqliteStorage) AddFriend(userID uint, friendUsername string) error {
	var f models.User
	err := s.db.Where("username = ?", friendUsername).First(&f).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return fmt.Errorf("user %s: %w", friendUsername, user.ErrNotFound)
		}
		return fmt.Errorf("could not find user: %w", err)
	}

	if f.ID == userID {
		return friend.ErrSelfFriend
	}

	// Ребро в обратном направлении уникальный индекс не покрывает,
	// поэтому его проверяем отдельно
	var reverse models.Friend
	err = s.db.Where("user_id = ? AND friend_id = ?", f.ID, userID).First(&reverse).Error
	if err == nil {
		return friend.ErrAlreadyFriends
	}
	if !gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("could not check friendship: %w", err)
	}

	// Дубликат в прямом направлении ловим по уникальному индексу
	edge := &models.Friend{UserID: userID, FriendID: f.ID}
	err = s.db.Create(edge).Error
	if err != nil {
		if isUniqueViolation(err) {
			return friend.ErrAlreadyFriends
		}
		return fmt.Errorf("could not add friend: %w", err)
	}

	return nil
}

func (s *FriendSqliteStorage) Friends(userID uint) ([]*models.User, error) {
	var results []*models.User
	err := s.db.Raw(`
		SELECT u.*
		FROM friends f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = ? AND f.friend_id != ? AND u.deleted_at IS NULL`,
		userID, userID).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("could not get friends: %w", err)
	}
	return results, nil
}
