package auth

import (
	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity - данные аутентифицированного пользователя на время одного запроса
type Identity struct {
	ID        uint
	Username  string
	FirstName string
	LastName  string
}

// Validator перепроверяет сессионный токен по базе на каждом запросе.
// Состояний два: анонимный и аутентифицированный, третьего не дано -
// любая проблема с токеном или записью пользователя означает анонимный доступ.
type Validator struct {
	users  user.UserStorage
	secret string
}

func NewValidator(users user.UserStorage, secret string) *Validator {
	return &Validator{users: users, secret: secret}
}

// Validate никогда не возвращает ошибку: ok=false означает анонимный запрос
func (v *Validator) Validate(tokenString string) (Identity, bool) {
	username, password, ok := parseSession(v.secret, tokenString)
	if !ok {
		return Identity{}, false
	}

	u, err := v.users.FindByUsername(username)
	if err != nil {
		return Identity{}, false
	}

	// Битая запись (пустой хеш) - это отказ в аутентификации, а не паника
	if u.Password == "" || u.Username == "" {
		return Identity{}, false
	}

	if !CheckPassword(password, u.Password) {
		return Identity{}, false
	}

	return Identity{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, true
}

// Middleware достает токен из cookie, валидирует его и кладет Identity в контекст запроса.
// Неавторизованный доступ пропускаем дальше - решение принимает сам хендлер.
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err == nil && tokenString != "" {
			if ident, ok := v.Validate(tokenString); ok {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// CurrentIdentity достает Identity из контекста запроса
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	ident, ok := val.(Identity)
	if !ok {
		return Identity{}, false
	}
	return ident, true
}
