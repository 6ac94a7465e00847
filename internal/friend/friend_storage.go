package friend

import (
	"errors"

	"github.com/VitaminP8/socialnet/models"
)

var (
	// ErrSelfFriend - нельзя добавить в друзья самого себя
	ErrSelfFriend = errors.New("cannot befriend yourself")
	// ErrAlreadyFriends - ребро дружбы уже существует
	ErrAlreadyFriends = errors.New("already friends")
)

type FriendStorage interface {
	// AddFriend возвращает user.ErrNotFound, если friendUsername не существует
	AddFriend(userID uint, friendUsername string) error
	Friends(userID uint) ([]*models.User, error)
}
