package doctors

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/openinghours"
	"docpoint-service/internal/pkg/ratings"
	"docpoint-service/internal/pkg/utils"
	"encoding/base64"
	"fmt"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Storage          contracts.Storage
	BucketName       string
	PublicBaseURL    string
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	driverConfig *config.DriverConfig,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Storage:          storage,
		BucketName:       driverConfig.Minio.BucketName,
		PublicBaseURL:    driverConfig.Minio.PublicBaseURL,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, request *requests.ListDoctors, nowHour int) ([]responses.DoctorView, *responses.Pagination, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	views := buildDoctorViews(doctors, nowHour)
	views = filterBySearchText(views, request.SearchText)
	views = filterBySpecialty(views, request.Specialty)
	if request.OpenOnly {
		views = filterOpenOnly(views)
	}
	if request.FavoritesOnly {
		views = filterByFavorites(views, request.FavoriteIDs)
	}
	sortDoctorViews(views, request.SortBy)

	total := len(views)
	page, pageSize := normalizePagination(request.Page, request.PageSize)
	views = paginate(views, page, pageSize)

	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	return views, pagination, nil
}

func (uc *doctorUsecase) FindDoctorByID(ctx context.Context, doctorID string, nowHour int) (*responses.DoctorDetail, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	detail := &responses.DoctorDetail{
		DoctorView: buildDoctorView(*doctor, nowHour),
	}

	// Malformed hours surface as "hours unavailable", never as an error.
	if _, parseErr := openinghours.Parse(doctor.OpeningHours); parseErr == nil {
		detail.HoursAvailable = true
	}

	detail.Ratings = make([]responses.RatingView, 0, len(doctor.Ratings))
	for _, rating := range doctor.Ratings {
		detail.Ratings = append(detail.Ratings, responses.RatingView{
			UserID:  rating.UserID,
			Score:   rating.Score,
			Comment: rating.Comment,
		})
	}

	return detail, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (string, error) {
	doctor := &models.Doctor{
		Name:         request.Name,
		Description:  request.Description,
		Tags:         request.Tags,
		Specialties:  request.Specialties,
		OpeningHours: request.OpeningHours,
		Ratings:      []models.Rating{},
	}

	return uc.DoctorRepository.Create(ctx, doctor)
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	doctor.Name = request.Name
	doctor.Description = request.Description
	doctor.Tags = request.Tags
	doctor.Specialties = request.Specialties
	doctor.OpeningHours = request.OpeningHours

	return uc.DoctorRepository.Update(ctx, doctor)
}

func (uc *doctorUsecase) DeleteDoctorByID(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) UploadDoctorPhoto(ctx context.Context, doctorID string, request *requests.UploadDoctorPhoto) (*responses.DoctorPhoto, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	imageData, err := base64.StdEncoding.DecodeString(request.ImageData)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	objectName := utils.GeneratePhotoObjectName(doctorID, request.FileExtension)
	objectName, err = uc.Storage.UploadBase64Image(ctx, imageData, uc.BucketName, objectName, request.FileExtension)
	if err != nil {
		return nil, err
	}

	photoURL := fmt.Sprintf("%s/%s/%s", uc.PublicBaseURL, uc.BucketName, objectName)
	if err := uc.DoctorRepository.UpdatePhotoURL(ctx, doctorID, photoURL); err != nil {
		return nil, err
	}

	return &responses.DoctorPhoto{PhotoURL: photoURL}, nil
}

func buildDoctorView(doctor models.Doctor, nowHour int) responses.DoctorView {
	isOpen := false
	// Parse failure means the doctor shows as closed but stays listed.
	if timeRange, err := openinghours.Parse(doctor.OpeningHours); err == nil {
		isOpen = timeRange.IsOpenAt(nowHour)
	}

	return responses.DoctorView{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Description:  doctor.Description,
		Tags:         doctor.Tags,
		Specialties:  doctor.Specialties,
		OpeningHours: doctor.OpeningHours,
		PhotoURL:     doctor.PhotoURL,
		IsOpen:       isOpen,
		Rating:       ratings.Summarize(doctor.RatingScores()),
	}
}

func buildDoctorViews(doctors []models.Doctor, nowHour int) []responses.DoctorView {
	views := make([]responses.DoctorView, 0, len(doctors))
	for _, doctor := range doctors {
		views = append(views, buildDoctorView(doctor, nowHour))
	}
	return views
}
