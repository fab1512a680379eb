package contracts

import (
	"context"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
)

type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, request *requests.RegisterDevice) error
}

type DeviceTokenRepository interface {
	UpsertByToken(ctx context.Context, deviceToken *models.DeviceToken) error
	FindAllTokens(ctx context.Context) ([]string, error)
}
