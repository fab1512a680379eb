package contracts

import (
	"context"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type RatingUsecase interface {
	SubmitRating(ctx context.Context, doctorID string, request *requests.SubmitRating) (*responses.RatingSubmitted, error)
}
