package contracts

import (
	"context"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	Broadcast(ctx context.Context, request *requests.BroadcastNotification) (*responses.NotificationBroadcast, error)
}
