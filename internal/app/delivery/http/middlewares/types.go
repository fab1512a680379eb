package middlewares

import (
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             log,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
