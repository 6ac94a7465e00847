package server

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash - одноразовое сообщение пользователю, живет до следующего рендера
type Flash struct {
	Category string `json:"category"` // success | info | warning
	Message  string `json:"message"`
}

// addFlash дописывает сообщение в flash-cookie (переживает redirect)
func addFlash(c *gin.Context, category, message string) {
	flashes := readFlashes(c)
	flashes = append(flashes, Flash{Category: category, Message: message})

	data, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(data), 300, "/", "", false, true)
}

// popFlashes читает сообщения и сразу гасит cookie
func popFlashes(c *gin.Context) []Flash {
	flashes := readFlashes(c)
	if len(flashes) > 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return flashes
}

func readFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
