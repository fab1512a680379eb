package auth

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	AdminRepository contracts.AdminRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		AdminRepository: adminRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// Login checks the credentials, stores a session in Redis and hands back a
// JWT carrying the session id. The session TTL matches the token expiry so
// both die together.
func (uc *authUsecase) Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	admin, err := uc.AdminRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, admin.PasswordHash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionID := utils.GenerateSessionID()
	session := models.Session{
		SessionID: sessionID,
		AdminID:   admin.ID,
		Username:  admin.Username,
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionID, session, expTime); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.AdminLogin{Token: token}, nil
}
