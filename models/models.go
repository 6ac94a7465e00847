package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username    string `gorm:"unique_index"`
	Password    string // bcrypt-хеш, никогда не храним пароль в открытом виде
	FirstName   string
	LastName    string
	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string
	Posts       []Post    `gorm:"foreignkey:UserID"`
	Comments    []Comment `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	UserID   uint
	Content  string
	Image    string // имя файла в каталоге загрузок, может быть пустым
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	PostID  uint
	UserID  uint
	Content string
}

// Friend - направленное ребро дружбы. Составной уникальный индекс не дает
// вставить дубликат ребра в одном направлении (проверка на уровне БД, а не через SELECT).
type Friend struct {
	ID       uint `gorm:"primary_key"`
	UserID   uint `gorm:"unique_index:idx_friend_edge"`
	FriendID uint `gorm:"unique_index:idx_friend_edge"`
}
