package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VitaminP8/socialnet/internal/comment"
	"github.com/VitaminP8/socialnet/internal/config"
	"github.com/VitaminP8/socialnet/internal/friend"
	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/internal/server"
	"github.com/VitaminP8/socialnet/internal/storage/memory"
	"github.com/VitaminP8/socialnet/internal/storage/sqlite"
	"github.com/VitaminP8/socialnet/internal/user"
)

func main() {
	storageType := flag.String("storage", "sqlite", "Тип хранилища: sqlite или memory")
	reset := flag.Bool("reset", false, "Удалить каталог instance (база и загрузки) и выйти")
	flag.Parse()

	log := logrus.New()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	instanceDir := config.GetEnvDefault("INSTANCE_DIR", "instance")
	uploadsDir := config.GetEnvDefault("UPLOADS_DIR", filepath.Join(instanceDir, "uploads"))
	dbPath := config.GetEnvDefault("SQLITE_PATH", filepath.Join(instanceDir, "sqlite3.db"))
	addr := config.GetEnvDefault("ADDR", ":8080")
	secret := config.GetEnv("SESSION_SECRET")

	if *reset {
		if err := os.RemoveAll(instanceDir); err != nil {
			log.Fatalf("не удалось удалить каталог instance: %v", err)
		}
		log.Infof("Каталог %s удален", instanceDir)
		return
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("не удалось создать каталог загрузок: %v", err)
	}

	var userStore user.UserStorage
	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var friendStore friend.FriendStorage

	switch *storageType {
	case "sqlite":
		db, err := sqlite.Open(dbPath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := sqlite.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Info("Используется SQLite хранилище")
		userStore = sqlite.NewUserSqliteStorage(db)
		postStore = sqlite.NewPostSqliteStorage(db)
		commentStore = sqlite.NewCommentSqliteStorage(db)
		friendStore = sqlite.NewFriendSqliteStorage(db)

	case "memory":
		log.Info("Используется in-memory хранилище")
		store := memory.NewStorage()
		userStore = store
		postStore = store
		commentStore = store
		friendStore = store

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	engine := server.New(server.Config{
		Users:      userStore,
		Posts:      postStore,
		Comments:   commentStore,
		Friends:    friendStore,
		Secret:     secret,
		UploadsDir: uploadsDir,
		Log:        log,
	})

	// HTTP сервер
	srv := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// запуск HTTP сервера
	go func() {
		log.Infof("Сервер запущен на http://localhost%s/", addr)
		// строка не возвращается (блокирует поток) пока не выполнится srv.Shutdown()
		// или не произойдет фатальная ошибка, поэтому запускаем в goroutine
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // ждет сигнал

	log.Info("Завершение...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Info("Сервер остановлен корректно")
}
