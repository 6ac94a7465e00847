package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/VitaminP8/socialnet/internal/auth"
	"github.com/VitaminP8/socialnet/internal/comment"
	"github.com/VitaminP8/socialnet/internal/friend"
	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/internal/upload"
	"github.com/VitaminP8/socialnet/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server - хендлеры всех страниц приложения. Все зависимости инжектируются
// явно при создании, глобальных синглтонов нет.
type Server struct {
	users      user.UserStorage
	posts      post.PostStorage
	comments   comment.CommentStorage
	friends    friend.FriendStorage
	validator  *auth.Validator
	secret     string
	uploadsDir string
	log        *logrus.Logger
}

// index - страница входа и регистрации (GET)
func (s *Server) index(c *gin.Context) {
	s.render(c, "index.tmpl", gin.H{"Title": "Welcome"})
}

// indexPost разбирает составную форму: скрытое поле form говорит,
// какая из двух форм была отправлена
func (s *Server) indexPost(c *gin.Context) {
	switch c.PostForm("form") {
	case "login":
		s.login(c)
	case "register":
		s.register(c)
	default:
		addFlash(c, "warning", "Your submitted form data is not valid.")
		c.Redirect(http.StatusFound, "/")
	}
}

func (s *Server) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	u, err := s.users.FindByUsername(form.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			addFlash(c, "warning", "Your login credentials are not valid.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		s.storageError(c, err)
		return
	}

	if !auth.CheckPassword(form.Password, u.Password) {
		addFlash(c, "warning", "Your login credentials are not valid.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, ttl, err := auth.IssueSession(s.secret, form.Username, form.Password, form.Remember)
	if err != nil {
		s.storageError(c, err)
		return
	}

	c.SetCookie(auth.SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
	addFlash(c, "info", "You are logged in as "+u.Username+".")
	c.Redirect(http.StatusFound, "/stream/"+u.Username)
}

func (s *Server) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		s.storageError(c, err)
		return
	}

	_, err = s.users.Create(form.Username, form.FirstName, form.LastName, hash)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			addFlash(c, "warning", "This username is already taken.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		s.storageError(c, err)
		return
	}

	addFlash(c, "success", "User successfully created!")
	c.Redirect(http.StatusFound, "/")
}

// stream - лента пользователя: его посты и посты его друзей
func (s *Server) stream(c *gin.Context) {
	username := c.Param("username")

	u, err := s.users.FindByUsername(username)
	if err != nil {
		s.userLookupError(c, err)
		return
	}

	posts, err := s.posts.Stream(u.ID)
	if err != nil {
		s.storageError(c, err)
		return
	}

	s.render(c, "stream.tmpl", gin.H{
		"Title":    "Stream",
		"Username": username,
		"Posts":    posts,
	})
}

// streamPost публикует новый пост, опционально с картинкой.
// Публиковать в ленту может только сам владелец ленты.
func (s *Server) streamPost(c *gin.Context) {
	ident, ok := s.requireSelf(c)
	if !ok {
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/stream/"+ident.Username)
		return
	}

	imageName := ""
	// Пустое имя файла - пользователь просто ничего не приложил
	file, err := c.FormFile("image")
	if err == nil && file != nil && file.Filename != "" {
		if !upload.AllowedExtension(file.Filename) {
			addFlash(c, "warning", "This file type is not allowed.")
			c.Redirect(http.StatusFound, "/stream/"+ident.Username)
			return
		}

		// Санитизация до всего остального, затем uuid-префикс против коллизий
		imageName = upload.UniqueName(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(s.uploadsDir, imageName)); err != nil {
			s.storageError(c, err)
			return
		}
	}

	if _, err := s.posts.CreatePost(ident.ID, form.Content, imageName); err != nil {
		s.storageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/stream/"+ident.Username)
}

// commentsPage - пост и все комментарии к нему, новые сверху
func (s *Server) commentsPage(c *gin.Context) {
	username := c.Param("username")
	postID, ok := s.parsePostID(c)
	if !ok {
		return
	}

	author, err := s.users.FindByUsername(username)
	if err != nil {
		s.userLookupError(c, err)
		return
	}

	p, err := s.posts.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			s.renderError(c, http.StatusNotFound, "Post not found.")
			return
		}
		s.storageError(c, err)
		return
	}

	comments, err := s.comments.Comments(p.ID)
	if err != nil {
		s.storageError(c, err)
		return
	}

	s.render(c, "comments.tmpl", gin.H{
		"Title":    "Comments",
		"Username": username,
		"Post":     p,
		"Author":   author,
		"Comments": comments,
	})
}

// commentsPost добавляет комментарий. Комментировать может любой
// аутентифицированный пользователь, автором становится он сам.
func (s *Server) commentsPost(c *gin.Context) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		s.renderError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	username := c.Param("username")
	postID, parsed := s.parsePostID(c)
	if !parsed {
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/comments/"+username+"/"+strconv.FormatUint(uint64(postID), 10))
		return
	}

	if _, err := s.comments.CreateComment(postID, ident.ID, form.Comment); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			s.renderError(c, http.StatusNotFound, "Post not found.")
			return
		}
		s.storageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/comments/"+username+"/"+strconv.FormatUint(uint64(postID), 10))
}

// friendsPage - список друзей; страница доступна только самому пользователю
func (s *Server) friendsPage(c *gin.Context) {
	ident, ok := s.requireSelf(c)
	if !ok {
		return
	}

	friends, err := s.friends.Friends(ident.ID)
	if err != nil {
		s.storageError(c, err)
		return
	}

	s.render(c, "friends.tmpl", gin.H{
		"Title":    "Friends",
		"Username": ident.Username,
		"Friends":  friends,
	})
}

func (s *Server) friendsPost(c *gin.Context) {
	ident, ok := s.requireSelf(c)
	if !ok {
		return
	}

	var form FriendForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/friends/"+ident.Username)
		return
	}

	err := s.friends.AddFriend(ident.ID, form.Username)
	switch {
	case err == nil:
		addFlash(c, "success", "Friend successfully added!")
	case errors.Is(err, user.ErrNotFound):
		addFlash(c, "warning", "User does not exist!")
	case errors.Is(err, friend.ErrSelfFriend):
		addFlash(c, "warning", "You cannot be friends with yourself!")
	case errors.Is(err, friend.ErrAlreadyFriends):
		addFlash(c, "warning", "You are already friends with this user!")
	default:
		s.storageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/friends/"+ident.Username)
}

// profilePage - профиль; страница доступна только самому пользователю
func (s *Server) profilePage(c *gin.Context) {
	ident, ok := s.requireSelf(c)
	if !ok {
		return
	}

	u, err := s.users.FindByUsername(ident.Username)
	if err != nil {
		s.userLookupError(c, err)
		return
	}

	s.render(c, "profile.tmpl", gin.H{
		"Title":    "Profile",
		"Username": ident.Username,
		"User":     u,
	})
}

func (s *Server) profilePost(c *gin.Context) {
	ident, ok := s.requireSelf(c)
	if !ok {
		return
	}

	var form ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "warning", formErrorMessage(err))
		c.Redirect(http.StatusFound, "/profile/"+ident.Username)
		return
	}

	err := s.users.UpdateProfile(ident.Username, user.ProfileUpdate{
		Education:   form.Education,
		Employment:  form.Employment,
		Music:       form.Music,
		Movie:       form.Movie,
		Nationality: form.Nationality,
		Birthday:    form.Birthday,
	})
	if err != nil {
		s.userLookupError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+ident.Username)
}

// uploads отдает загруженный файл. Имя из URL заново санитизируется
// перед любым обращением к файловой системе.
func (s *Server) uploads(c *gin.Context) {
	name := upload.SanitizeFilename(c.Param("filename"))
	path := filepath.Join(s.uploadsDir, name)

	if _, err := os.Stat(path); err != nil {
		s.renderError(c, http.StatusNotFound, "File not found.")
		return
	}

	c.File(path)
}

// requireSelf требует аутентифицированную сессию, совпадающую с username в URL
func (s *Server) requireSelf(c *gin.Context) (auth.Identity, bool) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		s.renderError(c, http.StatusUnauthorized, "Not logged in.")
		return auth.Identity{}, false
	}
	if ident.Username != c.Param("username") {
		s.renderError(c, http.StatusUnauthorized, "Not logged in as "+c.Param("username")+".")
		return auth.Identity{}, false
	}
	return ident, true
}

func (s *Server) parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("postID"), 10, 32)
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Post not found.")
		return 0, false
	}
	return uint(id), true
}

func (s *Server) userLookupError(c *gin.Context, err error) {
	if errors.Is(err, user.ErrNotFound) {
		s.renderError(c, http.StatusNotFound, "User not found.")
		return
	}
	s.storageError(c, err)
}

// storageError - фатальная для запроса ошибка хранилища: логируем и отдаем
// обезличенный 500, внутренности наружу не показываем
func (s *Server) storageError(c *gin.Context, err error) {
	s.log.WithError(err).WithField("path", c.Request.URL.Path).Error("storage failure")
	s.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Title":   "Error",
		"Message": message,
	})
	c.Abort()
}

// render добавляет к данным страницы flash-сообщения и текущую сессию
func (s *Server) render(c *gin.Context, template string, data gin.H) {
	data["Flashes"] = popFlashes(c)
	if ident, ok := auth.CurrentIdentity(c); ok {
		data["Identity"] = ident
	}
	c.HTML(http.StatusOK, template, data)
}
