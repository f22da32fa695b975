package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "user-directory/internal/application"
	"user-directory/internal/cache"
	"user-directory/internal/infrastructure/memory"
)

type envelope struct {
	Status  int                    `json:"status"`
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    userapp.UserProjection `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := memory.NewUserRepository()
	accessor := userapp.NewCacheAside(repo, cache.NewMemoryCache(), 900*time.Second, logger)
	svc := userapp.NewService(repo, accessor, logger, nil, nil, "")
	h := NewUserHandler(svc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Create)
	api.GET("/users/:id", h.Get)
	api.POST("/users/:id/ban", h.Ban)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateUserEndpoint(t *testing.T) {
	r := newTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/users", []byte(`{"display_name":"Jane Doe","email_address":"jane.doe@example.com"}`))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data.ID)
	assert.Nil(t, env.Data.ExclusionReasonCode)
}

func TestCreateUserRejectsInvalidPayload(t *testing.T) {
	r := newTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/users", []byte(`{"display_name":"","email_address":"not-an-email"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestGetUnknownUserReturns404(t *testing.T) {
	r := newTestRouter()

	w, env := doJSON(t, r, http.MethodGet, "/api/users/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestBanWithoutBodyAppliesDefaultReason(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/users", []byte(`{"display_name":"Jane Doe","email_address":"jane.doe@example.com"}`))

	w, env := doJSON(t, r, http.MethodPost, "/api/users/"+created.Data.ID+"/ban", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Data.ExclusionReasonCode)
	assert.Equal(t, byte(2), *env.Data.ExclusionReasonCode)
}

func TestBanWithExplicitReason(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/users", []byte(`{"display_name":"Jane Doe","email_address":"jane.doe@example.com"}`))

	w, env := doJSON(t, r, http.MethodPost, "/api/users/"+created.Data.ID+"/ban", []byte(`{"reason_code":3}`))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Data.ExclusionReasonCode)
	assert.Equal(t, byte(3), *env.Data.ExclusionReasonCode)
}

func TestBanUnknownReasonReturns400(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/users", []byte(`{"display_name":"Jane Doe","email_address":"jane.doe@example.com"}`))

	w, env := doJSON(t, r, http.MethodPost, "/api/users/"+created.Data.ID+"/ban", []byte(`{"reason_code":99}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestBanUnknownUserReturns404(t *testing.T) {
	r := newTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/users/no-such-id/ban", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
