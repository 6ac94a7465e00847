package server

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Правила полей повторяют ограничения форм приложения: длины, классы символов,
// обязательность. Нарушение любого правила - это warning для пользователя,
// а не ошибка сервера.

type LoginForm struct {
	Username string `form:"login_username" binding:"required,min=3,max=15,alphanum"`
	Password string `form:"login_password" binding:"required,min=5"`
	Remember bool   `form:"remember_me"`
}

type RegisterForm struct {
	FirstName       string `form:"first_name" binding:"required,min=2,max=20,alpha"`
	LastName        string `form:"last_name" binding:"required,min=2,max=20,alpha"`
	Username        string `form:"register_username" binding:"required,min=3,max=15,alphanum"`
	Password        string `form:"register_password" binding:"required,min=5"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type PostForm struct {
	Content string `form:"content" binding:"required,max=1000"`
}

type CommentForm struct {
	Comment string `form:"comment" binding:"required,max=1000"`
}

type FriendForm struct {
	Username string `form:"friend_username" binding:"required,min=3,max=20,alphanum"`
}

type ProfileForm struct {
	Education   string `form:"education" binding:"omitempty,max=100"`
	Employment  string `form:"employment" binding:"omitempty,max=100"`
	Music       string `form:"music" binding:"omitempty,max=100"`
	Movie       string `form:"movie" binding:"omitempty,max=100"`
	Nationality string `form:"nationality" binding:"omitempty,max=100"`
	Birthday    string `form:"birthday" binding:"omitempty,datetime=2006-01-02"`
}

// formErrorMessage превращает ошибку биндинга в сообщение для пользователя.
// Детали валидации не раскрываем, только факт и поле.
func formErrorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return "Your submitted form data is not valid: " + vErrs[0].Field()
	}
	return "Your submitted form data is not valid."
}
