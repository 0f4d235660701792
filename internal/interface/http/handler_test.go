package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/testing/memrepo"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *memrepo.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	users := memrepo.NewUserRepository()
	posts := memrepo.NewPostRepository()
	userSvc := &application.UserService{Repo: users}
	postSvc := &application.PostService{Posts: posts, Users: users}

	uh := NewUserHandler(userSvc, nil)
	ph := NewPostHandler(postSvc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/users", uh.GetAll)
	api.GET("/users/:id", uh.GetByID)
	api.POST("/users", uh.Create)
	api.PUT("/users/:id", uh.Update)
	api.DELETE("/users/:id", uh.Delete)

	api.GET("/posts", ph.GetAll)
	api.GET("/posts/by-status/:status", ph.GetByStatus)
	api.GET("/posts/:id", ph.GetByID)
	api.POST("/posts/:userId", ph.Create)
	api.PUT("/posts/:id", ph.Update)
	api.DELETE("/posts/:id", ph.Delete)

	return r, users
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func createUserViaAPI(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "jdoe42",
		"email":    "jdoe@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	require.NotEmpty(t, user.ID)
	return user.ID
}

func TestUserEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	id := createUserViaAPI(t, r)

	w, env := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	// short username fails request validation before the service runs
	w, env = doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "ab",
		"email":    "ab@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// duplicate email maps to 409
	w, _ = doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "someoneelse",
		"email":    "jdoe@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/users/not-a-real-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	userID := createUserViaAPI(t, r)

	// author must exist
	w, _ := doJSON(t, r, http.MethodPost, "/api/posts/ghost", gin.H{
		"title":   "Hello",
		"content": "body",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/posts/"+userID, gin.H{
		"title":   "Hello",
		"content": "body",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "draft", post.Status)

	// whitespace title passes binding but fails the value object
	w, env = doJSON(t, r, http.MethodPost, "/api/posts/"+userID, gin.H{
		"title":   "   ",
		"content": "body",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(env.Error), "Title cannot be empty")

	w, env = doJSON(t, r, http.MethodPut, "/api/posts/"+post.ID, gin.H{
		"status": "published",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "published", post.Status)

	w, env = doJSON(t, r, http.MethodGet, "/api/posts/by-status/published", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, post.ID, list[0].ID)

	w, _ = doJSON(t, r, http.MethodGet, "/api/posts/by-status/bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
