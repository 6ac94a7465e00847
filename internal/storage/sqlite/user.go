package sqlite

import (
	"fmt"

	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
)

type UserSqliteStorage struct {
	db *gorm.DB
}

func NewUserSqliteStorage(db *gorm.DB) *UserSqliteStorage {
	return &UserSqliteStorage{db: db}
}

func (s *UserSqliteStorage) Create(username, firstName, lastName, passwordHash string) (*models.User, error) {
	u := &models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  passwordHash,
	}

	// Не проверяем существование заранее - вставляем и смотрим на ошибку
	// уникального индекса (check-then-act здесь был бы гонкой)
	err := s.db.Create(u).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", username, user.ErrUsernameTaken)
		}
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return u, nil
}

func (s *UserSqliteStorage) FindByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &u, nil
}

func (s *UserSqliteStorage) UpdateProfile(username string, update user.ProfileUpdate) error {
	res := s.db.Model(&models.User{}).Where("username = ?", username).Updates(map[string]interface{}{
		"education":   update.Education,
		"employment":  update.Employment,
		"music":       update.Music,
		"movie":       update.Movie,
		"nationality": update.Nationality,
		"birthday":    update.Birthday,
	})
	if res.Error != nil {
		return fmt.Errorf("could not update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}
	return nil
}
