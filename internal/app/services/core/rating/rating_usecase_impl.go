package rating

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/ratings"
	"docpoint-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type ratingUsecase struct {
	Log              *zap.Logger
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
}

func NewRatingUsecase(
	logger *zap.Logger,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
) contracts.RatingUsecase {
	return &ratingUsecase{
		Log:              logger,
		DoctorRepository: doctorRepository,
		UserRepository:   userRepository,
	}
}

// SubmitRating appends the rating to the doctor document and then mirrors
// it under the user document. The two writes are sequential and not
// transactional: if the second fails the doctor-side rating stays, and the
// caller gets the error.
func (uc *ratingUsecase) SubmitRating(ctx context.Context, doctorID string, request *requests.SubmitRating) (*responses.RatingSubmitted, error) {
	if err := ratings.ValidateScore(request.Score); err != nil {
		return nil, exceptions.ErrRatingOutOfRange(err)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	now := time.Now()
	updated := make([]models.Rating, 0, len(doctor.Ratings)+1)
	updated = append(updated, doctor.Ratings...)
	updated = append(updated, models.Rating{
		UserID:    request.UserID,
		Score:     request.Score,
		Comment:   request.Comment,
		CreatedAt: now,
	})

	requestID := utils.GetRequestID(ctx)

	err = utils.LogOperation(uc.Log, "RatingUsecase.ReplaceDoctorRatings", requestID, func() error {
		return uc.DoctorRepository.ReplaceRatings(ctx, doctorID, updated)
	})
	if err != nil {
		return nil, err
	}

	err = utils.LogOperation(uc.Log, "RatingUsecase.AppendUserRating", requestID, func() error {
		return uc.UserRepository.AppendRating(ctx, request.UserID, models.UserRating{
			DoctorID:  doctorID,
			Score:     request.Score,
			Comment:   request.Comment,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	scores := make([]int, 0, len(updated))
	for _, r := range updated {
		scores = append(scores, r.Score)
	}

	return &responses.RatingSubmitted{
		DoctorID: doctorID,
		Rating:   ratings.Summarize(scores),
	}, nil
}
