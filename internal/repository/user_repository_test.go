package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// testDB opens a fresh in-memory SQLite database per test. The named DSN
// keeps the database alive across pooled connections.
func testDB(t *testing.T) *gorm.DB {
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}, &models.Follow{}, &models.Like{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: "HASHED_PASSWORD",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserString(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "testuser", "test@test.com")

	assert.Equal(t, fmt.Sprintf("<User #%d: testuser, test@test.com>", u.ID), u.String())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	createUser(t, db, "testuser", "test@test.com")

	err := repo.Create(&models.User{Username: "testuser", Email: "other@test.com", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	createUser(t, db, "testuser", "test@test.com")

	err := repo.Create(&models.User{Username: "otheruser", Email: "test@test.com", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestNullUsernameRejectedBySchema(t *testing.T) {
	db := testDB(t)

	err := db.Exec("INSERT INTO users (username, email, password) VALUES (NULL, ?, ?)", "test@test.com", "x").Error
	assert.Error(t, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "failed insert must not commit a row")
}

func TestNullEmailRejectedBySchema(t *testing.T) {
	db := testDB(t)

	err := db.Exec("INSERT INTO users (username, email, password) VALUES (?, NULL, ?)", "testuser", "x").Error
	assert.Error(t, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestFollowRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u1 := createUser(t, db, "test1", "email1@email.com")
	u2 := createUser(t, db, "test2", "email2@email.com")

	require.NoError(t, repo.Follow(u1.ID, u2.ID))

	following, err := repo.IsFollowing(u1.ID, u2.ID)
	assert.NoError(t, err)
	assert.True(t, following)

	followedBy, err := repo.IsFollowedBy(u2.ID, u1.ID)
	assert.NoError(t, err)
	assert.True(t, followedBy)

	require.NoError(t, repo.Unfollow(u1.ID, u2.ID))

	following, _ = repo.IsFollowing(u1.ID, u2.ID)
	assert.False(t, following)
	followedBy, _ = repo.IsFollowedBy(u2.ID, u1.ID)
	assert.False(t, followedBy)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u1 := createUser(t, db, "test1", "email1@email.com")
	u2 := createUser(t, db, "test2", "email2@email.com")

	assert.NoError(t, repo.Unfollow(u1.ID, u2.ID))
}

func TestListFollowersAndFollowing(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u1 := createUser(t, db, "test1", "email1@email.com")
	u2 := createUser(t, db, "test2", "email2@email.com")
	u3 := createUser(t, db, "test3", "email3@email.com")

	require.NoError(t, repo.Follow(u2.ID, u1.ID))
	require.NoError(t, repo.Follow(u3.ID, u1.ID))
	require.NoError(t, repo.Follow(u1.ID, u2.ID))

	followers, err := repo.ListFollowers(u1.ID)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := repo.ListFollowing(u1.ID)
	assert.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, u2.ID, following[0].ID)

	count, err := repo.CountFollowers(u1.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestNewUserHasNoFollowersOrMessages(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u := createUser(t, db, "testuser", "test@test.com")

	followers, err := repo.CountFollowers(u.ID)
	assert.NoError(t, err)
	assert.Zero(t, followers)

	var messages int64
	db.Model(&models.Message{}).Where("user_id = ?", u.ID).Count(&messages)
	assert.Zero(t, messages)
}

func TestSearchUsers(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	createUser(t, db, "testuser", "test@test.com")
	createUser(t, db, "other", "other@other.com")

	users, err := repo.Search("%test%", 50)
	assert.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "testuser", users[0].Username)

	all, err := repo.Search("", 50)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteUserCascades(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	u1 := createUser(t, db, "test1", "email1@email.com")
	u2 := createUser(t, db, "test2", "email2@email.com")

	ownMsg := &models.Message{Text: "mine", UserID: u1.ID}
	require.NoError(t, messages.Create(ownMsg))
	otherMsg := &models.Message{Text: "theirs", UserID: u2.ID}
	require.NoError(t, messages.Create(otherMsg))

	require.NoError(t, users.Follow(u1.ID, u2.ID))
	require.NoError(t, users.Follow(u2.ID, u1.ID))
	require.NoError(t, messages.Like(u2.ID, ownMsg.ID))
	require.NoError(t, messages.Like(u1.ID, otherMsg.ID))

	require.NoError(t, users.Delete(u1.ID))

	_, err := users.GetByID(u1.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = messages.GetByID(ownMsg.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "owned messages go with the account")

	var followCount int64
	db.Model(&models.Follow{}).Where("follower_id = ? OR followed_id = ?", u1.ID, u1.ID).Count(&followCount)
	assert.Zero(t, followCount, "both directions of follow edges removed")

	var likeCount int64
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Zero(t, likeCount, "likes by the user and on its messages removed")

	// The other account and its message survive
	_, err = users.GetByID(u2.ID)
	assert.NoError(t, err)
	_, err = messages.GetByID(otherMsg.ID)
	assert.NoError(t, err)
}
