package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMessage(t *testing.T) {
	r, db := setupTest(t)
	token, id := createTestUser(t, r, "testuser", "test@test.com")

	w := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Hello"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var msg models.Message
	require.NoError(t, db.First(&msg).Error)
	assert.Equal(t, "Hello", msg.Text)
	assert.Equal(t, id, msg.UserID)
}

func TestAddMessageNoSession(t *testing.T) {
	r, db := setupTest(t)
	createTestUser(t, r, "testuser", "test@test.com")

	w := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Test Text"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access unauthorized.")

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count, "anonymous posts must not persist")
}

func TestAddMessageDeletedUserToken(t *testing.T) {
	r, db := setupTest(t)
	token, id := createTestUser(t, r, "testuser", "test@test.com")

	// The account behind the token is gone; its token must stop working
	require.NoError(t, db.Delete(&models.User{}, id).Error)

	w := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Test Text"}, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access unauthorized.")

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestSeeMessage(t *testing.T) {
	r, _ := setupTest(t)
	token, _ := createTestUser(t, r, "testuser", "test@test.com")

	created := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Test Text"}, token)
	require.Equal(t, http.StatusCreated, created.Code)
	msg := decodeBody(t, created)["message"].(map[string]interface{})
	msgID := uint(msg["id"].(float64))

	// Individual messages are readable without a session
	w := performRequest(r, "GET", fmt.Sprintf("/api/messages/%d", msgID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Text")
}

func TestMissingMessageNotFound(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(r, "GET", "/api/messages/424242", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page does not exist")
}

func TestDeleteMessage(t *testing.T) {
	r, _ := setupTest(t)
	token, _ := createTestUser(t, r, "testuser", "test@test.com")

	created := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Test Text"}, token)
	require.Equal(t, http.StatusCreated, created.Code)
	msg := decodeBody(t, created)["message"].(map[string]interface{})
	msgID := uint(msg["id"].(float64))

	w := performRequest(r, "DELETE", fmt.Sprintf("/api/messages/%d", msgID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// The page no longer exists for the same message id
	gone := performRequest(r, "GET", fmt.Sprintf("/api/messages/%d", msgID), nil, "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
	assert.Contains(t, gone.Body.String(), "Page does not exist")
}

func TestWrongUserDeleteMessage(t *testing.T) {
	r, _ := setupTest(t)
	ownerToken, _ := createTestUser(t, r, "newuser", "newuser@test.com")
	otherToken, _ := createTestUser(t, r, "testuser", "test@test.com")

	created := performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "Test Text"}, ownerToken)
	require.Equal(t, http.StatusCreated, created.Code)
	msg := decodeBody(t, created)["message"].(map[string]interface{})
	msgID := uint(msg["id"].(float64))

	w := performRequest(r, "DELETE", fmt.Sprintf("/api/messages/%d", msgID), nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access unauthorized.")

	// The message survives the attempt
	still := performRequest(r, "GET", fmt.Sprintf("/api/messages/%d", msgID), nil, "")
	assert.Equal(t, http.StatusOK, still.Code)
}

func TestHomeTimeline(t *testing.T) {
	r, _ := setupTest(t)
	token1, _ := createTestUser(t, r, "reader", "reader@test.com")
	token2, id2 := createTestUser(t, r, "author", "author@test.com")
	token3, _ := createTestUser(t, r, "stranger", "stranger@test.com")

	follow := performRequest(r, "POST", fmt.Sprintf("/api/users/follow/%d", id2), nil, token1)
	require.Equal(t, http.StatusOK, follow.Code)

	require.Equal(t, http.StatusCreated,
		performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "from author"}, token2).Code)
	require.Equal(t, http.StatusCreated,
		performRequest(r, "POST", "/api/messages", map[string]interface{}{"text": "from stranger"}, token3).Code)

	w := performRequest(r, "GET", "/api/messages", nil, token1)
	require.Equal(t, http.StatusOK, w.Code)

	messages := decodeBody(t, w)["messages"].([]interface{})
	require.Len(t, messages, 1, "timeline shows followed users only")
	assert.Equal(t, "from author", messages[0].(map[string]interface{})["text"])
}
