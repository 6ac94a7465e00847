package sqlite

import (
	"testing"
	"time"

	"github.com/VitaminP8/socialnet/internal/post"
	"github.com/VitaminP8/socialnet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentSqliteStorage_CreateComment(t *testing.T) {
	t.Run("Successful comment creation", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewCommentSqliteStorage(db)

		author := createTestUser(t, db, "author")
		postID := createTestPost(t, db, author.ID, "post content")

		c, err := storage.CreateComment(postID, author.ID, "nice post")
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.Equal(t, postID, c.PostID)
		assert.Equal(t, author.ID, c.UserID)
		assert.Equal(t, "nice post", c.Content)
	})

	t.Run("Comment on non-existent post", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewCommentSqliteStorage(db)

		author := createTestUser(t, db, "author")

		// Вставка к несуществующему посту - явная ошибка, а не тихая запись
		_, err := storage.CreateComment(999, author.ID, "into the void")
		require.Error(t, err)
		assert.ErrorIs(t, err, post.ErrNotFound)

		var count int
		require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
		assert.Equal(t, 0, count)
	})
}

func TestCommentSqliteStorage_Comments(t *testing.T) {
	t.Run("Comments are newest first with author identity", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewCommentSqliteStorage(db)

		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")
		postID := createTestPost(t, db, alice.ID, "post content")

		base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		first := &models.Comment{PostID: postID, UserID: alice.ID, Content: "first"}
		first.CreatedAt = base
		require.NoError(t, db.Create(first).Error)

		second := &models.Comment{PostID: postID, UserID: bob.ID, Content: "second"}
		second.CreatedAt = base.Add(time.Minute)
		require.NoError(t, db.Create(second).Error)

		comments, err := storage.Comments(postID)
		require.NoError(t, err)
		require.Len(t, comments, 2)

		assert.Equal(t, "second", comments[0].Content)
		assert.Equal(t, "bob", comments[0].Username)
		assert.Equal(t, "first", comments[1].Content)
		assert.Equal(t, "alice", comments[1].Username)
	})

	t.Run("Comments of another post are not included", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewCommentSqliteStorage(db)

		alice := createTestUser(t, db, "alice")
		postID := createTestPost(t, db, alice.ID, "first post")
		otherID := createTestPost(t, db, alice.ID, "second post")

		require.NoError(t, db.Create(&models.Comment{PostID: otherID, UserID: alice.ID, Content: "elsewhere"}).Error)

		comments, err := storage.Comments(postID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
