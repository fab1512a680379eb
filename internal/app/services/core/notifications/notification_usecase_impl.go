package notifications

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type notificationUsecase struct {
	DeviceTokenRepository contracts.DeviceTokenRepository
	PushQueue             contracts.PushQueue
	BatchesPerSecond      int
	PublishTimeout        time.Duration
}

func NewNotificationUsecase(
	deviceTokenRepository contracts.DeviceTokenRepository,
	pushQueue contracts.PushQueue,
	internalConfig *config.InternalConfig,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		DeviceTokenRepository: deviceTokenRepository,
		PushQueue:             pushQueue,
		BatchesPerSecond:      internalConfig.Push.BatchesPerSecond,
		PublishTimeout:        time.Duration(internalConfig.Push.PublishTimeoutSecs) * time.Second,
	}
}

// Broadcast fans the message out to every registered device in batches of
// constvars.PushTokenBatchSize, pacing the publishes so a large directory
// audience does not flood the broker. The publish timeout applies per batch,
// not to the whole fanout, so the audience size never starves the deadline.
// A failed batch stops the fanout; earlier batches stay published.
func (uc *notificationUsecase) Broadcast(ctx context.Context, request *requests.BroadcastNotification) (*responses.NotificationBroadcast, error) {
	tokens, err := uc.DeviceTokenRepository.FindAllTokens(ctx)
	if err != nil {
		return nil, err
	}

	// A non-positive rate means no pacing.
	var limiter *rate.Limiter
	if uc.BatchesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(uc.BatchesPerSecond), 1)
	}

	batches := 0
	for start := 0; start < len(tokens); start += constvars.PushTokenBatchSize {
		end := start + constvars.PushTokenBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		message := contracts.PushMessage{
			ID:     uuid.NewString(),
			Tokens: tokens[start:end],
			Title:  request.Title,
			Body:   request.Body,
		}
		if err := uc.publishBatch(ctx, message); err != nil {
			return nil, err
		}
		batches++
	}

	return &responses.NotificationBroadcast{
		Tokens:  len(tokens),
		Batches: batches,
	}, nil
}

func (uc *notificationUsecase) publishBatch(ctx context.Context, message contracts.PushMessage) error {
	if uc.PublishTimeout <= 0 {
		return uc.PushQueue.Publish(ctx, message)
	}
	publishCtx, cancel := context.WithTimeout(ctx, uc.PublishTimeout)
	defer cancel()
	return uc.PushQueue.Publish(publishCtx, message)
}
