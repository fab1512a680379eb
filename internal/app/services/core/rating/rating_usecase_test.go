package rating

import (
	"context"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeDoctorRepository struct {
	doctor          *models.Doctor
	replaced        []models.Rating
	replaceErr      error
	replaceCalled   bool
	replaceSequence *[]string
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctor, nil
}

func (f *fakeDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	return "", nil
}

func (f *fakeDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) UpdatePhotoURL(ctx context.Context, doctorID, photoURL string) error {
	return nil
}

func (f *fakeDoctorRepository) ReplaceRatings(ctx context.Context, doctorID string, ratings []models.Rating) error {
	f.replaceCalled = true
	f.replaced = ratings
	if f.replaceSequence != nil {
		*f.replaceSequence = append(*f.replaceSequence, "doctor")
	}
	return f.replaceErr
}

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	return nil
}

type fakeUserRepository struct {
	appended       *models.UserRating
	appendedUserID string
	appendErr      error
	appendSequence *[]string
}

func (f *fakeUserRepository) AppendRating(ctx context.Context, userID string, rating models.UserRating) error {
	f.appendedUserID = userID
	f.appended = &rating
	if f.appendSequence != nil {
		*f.appendSequence = append(*f.appendSequence, "user")
	}
	return f.appendErr
}

func existingDoctor() *models.Doctor {
	return &models.Doctor{
		ID:   "doc-1",
		Name: "Ana Torres",
		Ratings: []models.Rating{
			{UserID: "u1", Score: 4},
		},
	}
}

func TestSubmitRating_AppendsAndSummarizes(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
	userRepo := &fakeUserRepository{}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, userRepo)

	response, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
		UserID:  "u2",
		Score:   5,
		Comment: "excelente",
	})
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", response.DoctorID)
	assert.Equal(t, 2, response.Rating.Count)
	assert.Equal(t, 4.5, response.Rating.Mean)

	assert.Len(t, doctorRepo.replaced, 2)
	assert.Equal(t, "u2", doctorRepo.replaced[1].UserID)
	assert.Equal(t, "excelente", doctorRepo.replaced[1].Comment)
}

func TestSubmitRating_MirrorsUnderUser(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
	userRepo := &fakeUserRepository{}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, userRepo)

	_, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
		UserID: "u2",
		Score:  3,
	})
	assert.NoError(t, err)
	assert.Equal(t, "u2", userRepo.appendedUserID)
	assert.Equal(t, "doc-1", userRepo.appended.DoctorID)
	assert.Equal(t, 3, userRepo.appended.Score)
}

func TestSubmitRating_DoctorWriteComesFirst(t *testing.T) {
	sequence := []string{}
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor(), replaceSequence: &sequence}
	userRepo := &fakeUserRepository{appendSequence: &sequence}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, userRepo)

	_, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
		UserID: "u2",
		Score:  4,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"doctor", "user"}, sequence)
}

func TestSubmitRating_UserMirrorFailureSurfaces(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
	userRepo := &fakeUserRepository{appendErr: errors.New("write failed")}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, userRepo)

	_, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
		UserID: "u2",
		Score:  4,
	})
	assert.Error(t, err)
	assert.True(t, doctorRepo.replaceCalled, "doctor-side write already happened")
}

func TestSubmitRating_ScoreOutOfRange(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, &fakeUserRepository{})

	for _, score := range []int{0, 6, -1, 100} {
		_, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
			UserID: "u2",
			Score:  score,
		})
		assert.Error(t, err, "score %d", score)
		customErr := &exceptions.CustomError{}
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.False(t, doctorRepo.replaceCalled, "no write on invalid score")
	}
}

func TestSubmitRating_AllValidScoresAccepted(t *testing.T) {
	for score := 1; score <= 5; score++ {
		doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
		uc := NewRatingUsecase(zap.NewNop(), doctorRepo, &fakeUserRepository{})

		response, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
			UserID: "u2",
			Score:  score,
		})
		assert.NoError(t, err, "score %d", score)
		assert.Equal(t, 2, response.Rating.Count)
	}
}

func TestSubmitRating_LogsBothWrites(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	doctorRepo := &fakeDoctorRepository{doctor: existingDoctor()}
	uc := NewRatingUsecase(zap.New(core), doctorRepo, &fakeUserRepository{})

	_, err := uc.SubmitRating(context.Background(), "doc-1", &requests.SubmitRating{
		UserID: "u2",
		Score:  4,
	})
	assert.NoError(t, err)

	completed := logs.FilterMessage("Operation completed").All()
	assert.Len(t, completed, 2, "one entry per repository write")

	operations := make([]string, 0, len(completed))
	for _, entry := range completed {
		operations = append(operations, entry.ContextMap()[constvars.LoggingOperationKey].(string))
	}
	assert.Equal(t, []string{"RatingUsecase.ReplaceDoctorRatings", "RatingUsecase.AppendUserRating"}, operations)
}

func TestSubmitRating_DoctorNotFound(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctor: nil}
	uc := NewRatingUsecase(zap.NewNop(), doctorRepo, &fakeUserRepository{})

	_, err := uc.SubmitRating(context.Background(), "missing", &requests.SubmitRating{
		UserID: "u2",
		Score:  4,
	})
	assert.Error(t, err)
	customErr := &exceptions.CustomError{}
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
