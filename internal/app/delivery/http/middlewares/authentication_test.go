package middlewares

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	sessions map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.sessions[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func newTestMiddlewares(sessions map[string]string) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	return NewMiddlewares(zap.NewNop(), &fakeRedisRepository{sessions: sessions}, internalConfig)
}

func okHandler(t *testing.T, sawSession *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string); ok {
			*sawSession = data
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newTestMiddlewares(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)

	var sawSession string
	m.Authenticate(okHandler(t, &sawSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sawSession)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m := newTestMiddlewares(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

	var sawSession string
	m.Authenticate(okHandler(t, &sawSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	m := newTestMiddlewares(map[string]string{})

	token, err := utils.GenerateJWT("session-1", "test-secret", time.Hour)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	var sawSession string
	m.Authenticate(okHandler(t, &sawSession)).ServeHTTP(rec, req)

	// Valid JWT but nothing in Redis anymore.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidSession(t *testing.T) {
	m := newTestMiddlewares(map[string]string{
		"session-1": `{"session_id":"session-1","admin_id":"admin-1","username":"ops"}`,
	})

	token, err := utils.GenerateJWT("session-1", "test-secret", time.Hour)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	var sawSession string
	m.Authenticate(okHandler(t, &sawSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, sawSession, "admin-1")
}
