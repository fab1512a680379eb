package devices

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
)

type deviceUsecase struct {
	DeviceTokenRepository contracts.DeviceTokenRepository
}

func NewDeviceUsecase(deviceTokenRepository contracts.DeviceTokenRepository) contracts.DeviceUsecase {
	return &deviceUsecase{
		DeviceTokenRepository: deviceTokenRepository,
	}
}

func (uc *deviceUsecase) RegisterDevice(ctx context.Context, request *requests.RegisterDevice) error {
	return uc.DeviceTokenRepository.UpsertByToken(ctx, &models.DeviceToken{
		Token:    request.Token,
		Platform: request.Platform,
	})
}
