package contracts

import (
	"context"
	"docpoint-service/internal/app/models"
)

type UserRepository interface {
	// AppendRating adds the mirror record under the submitting user's
	// document, creating the document if it does not exist yet.
	AppendRating(ctx context.Context, userID string, rating models.UserRating) error
}
