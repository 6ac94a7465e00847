package sqlite

import (
	"fmt"
	"strings"

	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Open подключается к базе данных SQLite по указанному пути.
// Соединение передается в хранилища явно (никаких глобальных переменных).
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Включаем foreign keys в SQLite
	db.Exec("PRAGMA foreign_keys = ON")

	return db, nil
}

// Migrate выполняет миграцию схемы базы данных
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Friend{}).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// isUniqueViolation проверяет, что ошибка вставки вызвана уникальным индексом.
// Уникальный индекс - единственный источник истины для дубликатов (никаких
// предварительных SELECT перед вставкой).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
