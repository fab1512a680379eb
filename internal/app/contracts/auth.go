package contracts

import (
	"context"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}
