package server

import (
	"embed"
	"html/template"

	"github.com/VitaminP8/socialnet/internal/auth"
	"github.com/VitaminP8/socialnet/internal/comment"
	"github.com/VitaminP8/socialnet/internal/friend"
	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Config - явные зависимости сервера, собираются в cmd/server
type Config struct {
	Users      user.UserStorage
	Posts      post.PostStorage
	Comments   comment.CommentStorage
	Friends    friend.FriendStorage
	Secret     string
	UploadsDir string
	Log        *logrus.Logger
}

// New собирает gin-роутер со всеми страницами приложения
func New(cfg Config) *gin.Engine {
	s := &Server{
		users:      cfg.Users,
		posts:      cfg.Posts,
		comments:   cfg.Comments,
		friends:    cfg.Friends,
		validator:  auth.NewValidator(cfg.Users, cfg.Secret),
		secret:     cfg.Secret,
		uploadsDir: cfg.UploadsDir,
		log:        cfg.Log,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	// Сессия перепроверяется по базе на каждом запросе
	engine.Use(s.validator.Middleware())

	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	engine.GET("/", s.index)
	engine.POST("/", s.indexPost)
	engine.GET("/index", s.index)
	engine.POST("/index", s.indexPost)

	engine.GET("/stream/:username", s.stream)
	engine.POST("/stream/:username", s.streamPost)

	engine.GET("/comments/:username/:postID", s.commentsPage)
	engine.POST("/comments/:username/:postID", s.commentsPost)

	engine.GET("/friends/:username", s.friendsPage)
	engine.POST("/friends/:username", s.friendsPost)

	engine.GET("/profile/:username", s.profilePage)
	engine.POST("/profile/:username", s.profilePost)

	engine.GET("/uploads/:filename", s.uploads)

	return engine
}
