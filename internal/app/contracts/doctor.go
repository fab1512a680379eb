package contracts

import (
	"context"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	// ListDoctors runs the full in-memory pipeline (derive open/closed and
	// rating summary, filter, stable sort, paginate) over the whole
	// collection. nowHour is the caller's local wall-clock hour.
	ListDoctors(ctx context.Context, request *requests.ListDoctors, nowHour int) ([]responses.DoctorView, *responses.Pagination, error)
	FindDoctorByID(ctx context.Context, doctorID string, nowHour int) (*responses.DoctorDetail, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (string, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) error
	DeleteDoctorByID(ctx context.Context, doctorID string) error
	UploadDoctorPhoto(ctx context.Context, doctorID string, request *requests.UploadDoctorPhoto) (*responses.DoctorPhoto, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (string, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	UpdatePhotoURL(ctx context.Context, doctorID, photoURL string) error
	// ReplaceRatings persists the full rating list built by the rating
	// submission usecase.
	ReplaceRatings(ctx context.Context, doctorID string, ratings []models.Rating) error
	DeleteByID(ctx context.Context, doctorID string) error
}
