package sqlite

import (
	"testing"
	"time"

	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSqliteStorage_CreatePost(t *testing.T) {
	t.Run("Successful post creation", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		author := createTestUser(t, db, "author")

		p, err := storage.CreatePost(author.ID, "hello world", "pic.jpg")
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.Equal(t, author.ID, p.UserID)
		assert.Equal(t, "hello world", p.Content)
		assert.Equal(t, "pic.jpg", p.Image)
	})

	t.Run("Post without image", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		author := createTestUser(t, db, "author")

		p, err := storage.CreatePost(author.ID, "no image here", "")
		require.NoError(t, err)
		assert.Empty(t, p.Image)
	})
}

func TestPostSqliteStorage_GetPostByID(t *testing.T) {
	t.Run("Get existing post", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		author := createTestUser(t, db, "author")
		postID := createTestPost(t, db, author.ID, "some content")

		p, err := storage.GetPostByID(postID)
		require.NoError(t, err)
		assert.Equal(t, postID, p.ID)
		assert.Equal(t, "some content", p.Content)
	})

	t.Run("Get non-existent post", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		_, err := storage.GetPostByID(999)
		require.Error(t, err)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}

func TestPostSqliteStorage_Stream(t *testing.T) {
	// createTimedPost создает пост с заданным временем создания,
	// чтобы проверка порядка не зависела от скорости теста
	createTimedPost := func(t *testing.T, db *gorm.DB, userID uint, content string, at time.Time) uint {
		p := &models.Post{UserID: userID, Content: content}
		p.CreatedAt = at
		require.NoError(t, db.Create(p).Error)
		return p.ID
	}

	t.Run("Stream contains own posts and friends posts in both directions", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")
		carol := createTestUser(t, db, "carol")
		stranger := createTestUser(t, db, "stranger")

		// alice -> bob и carol -> alice: оба направления должны попасть в ленту
		require.NoError(t, db.Create(&models.Friend{UserID: alice.ID, FriendID: bob.ID}).Error)
		require.NoError(t, db.Create(&models.Friend{UserID: carol.ID, FriendID: alice.ID}).Error)

		base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		createTimedPost(t, db, alice.ID, "from alice", base)
		createTimedPost(t, db, bob.ID, "from bob", base.Add(time.Minute))
		createTimedPost(t, db, carol.ID, "from carol", base.Add(2*time.Minute))
		createTimedPost(t, db, stranger.ID, "from stranger", base.Add(3*time.Minute))

		stream, err := storage.Stream(alice.ID)
		require.NoError(t, err)
		require.Len(t, stream, 3)

		// Новые сверху
		assert.Equal(t, "from carol", stream[0].Content)
		assert.Equal(t, "from bob", stream[1].Content)
		assert.Equal(t, "from alice", stream[2].Content)

		// Посты не-друзей в ленту не попадают
		for _, sp := range stream {
			assert.NotEqual(t, "from stranger", sp.Content)
		}

		// Автор подтягивается из users
		assert.Equal(t, "carol", stream[0].Username)
	})

	t.Run("Stream annotates comment count", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		alice := createTestUser(t, db, "alice")
		postID := createTestPost(t, db, alice.ID, "commented post")
		createTestPost(t, db, alice.ID, "empty post")

		require.NoError(t, db.Create(&models.Comment{PostID: postID, UserID: alice.ID, Content: "first"}).Error)
		require.NoError(t, db.Create(&models.Comment{PostID: postID, UserID: alice.ID, Content: "second"}).Error)

		stream, err := storage.Stream(alice.ID)
		require.NoError(t, err)
		require.Len(t, stream, 2)

		counts := map[string]int{}
		for _, sp := range stream {
			counts[sp.Content] = sp.CommentCount
		}
		assert.Equal(t, 2, counts["commented post"])
		assert.Equal(t, 0, counts["empty post"])
	})

	t.Run("Stream of user without friends and posts is empty", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostSqliteStorage(db)

		alice := createTestUser(t, db, "alice")

		stream, err := storage.Stream(alice.ID)
		require.NoError(t, err)
		assert.Empty(t, stream)
	})
}
