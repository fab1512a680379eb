package auth

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeAdminRepository struct {
	admin *models.Admin
}

func (f *fakeAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if f.admin != nil && f.admin.Username == username {
		return f.admin, nil
	}
	return nil, nil
}

type fakeRedisRepository struct {
	storedKey   string
	storedValue interface{}
	storedExp   time.Duration
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.storedKey = key
	f.storedValue = value
	f.storedExp = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func testInternalConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 2
	return internalConfig
}

func TestLogin_Success(t *testing.T) {
	passwordHash, err := utils.HashPassword("s3cret")
	assert.NoError(t, err)

	adminRepo := &fakeAdminRepository{admin: &models.Admin{
		ID:           "admin-1",
		Username:     "ops",
		PasswordHash: passwordHash,
	}}
	redisRepo := &fakeRedisRepository{}
	uc := NewAuthUsecase(adminRepo, redisRepo, testInternalConfig())

	response, err := uc.Login(context.Background(), &requests.AdminLogin{
		Username: "ops",
		Password: "s3cret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)

	// Token resolves back to the Redis session key.
	sessionID, err := utils.ParseJWT(response.Token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, redisRepo.storedKey, sessionID)

	session, ok := redisRepo.storedValue.(models.Session)
	assert.True(t, ok)
	assert.Equal(t, "admin-1", session.AdminID)
	assert.Equal(t, 2*time.Hour, redisRepo.storedExp)
}

func TestLogin_WrongPassword(t *testing.T) {
	passwordHash, _ := utils.HashPassword("s3cret")
	adminRepo := &fakeAdminRepository{admin: &models.Admin{
		Username:     "ops",
		PasswordHash: passwordHash,
	}}
	uc := NewAuthUsecase(adminRepo, &fakeRedisRepository{}, testInternalConfig())

	_, err := uc.Login(context.Background(), &requests.AdminLogin{
		Username: "ops",
		Password: "wrong",
	})
	assert.Error(t, err)
	customErr := &exceptions.CustomError{}
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLogin_UnknownUsername(t *testing.T) {
	uc := NewAuthUsecase(&fakeAdminRepository{}, &fakeRedisRepository{}, testInternalConfig())

	_, err := uc.Login(context.Background(), &requests.AdminLogin{
		Username: "ghost",
		Password: "whatever",
	})
	assert.Error(t, err)
	customErr := &exceptions.CustomError{}
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}
