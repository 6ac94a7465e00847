package user

import (
	"errors"

	"github.com/VitaminP8/socialnet/models"
)

var (
	// ErrNotFound - пользователь с таким username не существует
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken - username уже занят (уникальный индекс в БД)
	ErrUsernameTaken = errors.New("username already taken")
)

// ProfileUpdate - поля профиля, которые можно редактировать после регистрации
type ProfileUpdate struct {
	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string
}

type UserStorage interface {
	Create(username, firstName, lastName, passwordHash string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	UpdateProfile(username string, update ProfileUpdate) error
}
