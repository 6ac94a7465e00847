package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie - имя cookie с сессионным токеном
const SessionCookie = "session"

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// IssueSession выписывает подписанный сессионный токен. Токен несет username и
// password в открытом виде (bearer-credential схема: credentials перепроверяются
// по базе на каждом запросе), подпись защищает только от подделки содержимого.
func IssueSession(secret, username, password string, remember bool) (string, time.Duration, error) {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"password": password,
		"exp":      time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, ttl, nil
}

// parseSession разбирает и проверяет подпись токена. Возвращает ok=false на
// любой проблеме: просроченный токен, чужая подпись, отсутствующие поля.
func parseSession(secret, tokenString string) (username, password string, ok bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", false
	}

	username, ok = claims["username"].(string)
	if !ok || username == "" {
		return "", "", false
	}
	password, ok = claims["password"].(string)
	if !ok || password == "" {
		return "", "", false
	}

	return username, password, true
}
