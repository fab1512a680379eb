package doctors

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	request, err := parseListDoctorsQuery(r.URL.Query())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, pagination, err := ctrl.DoctorUsecase.ListDoctors(ctx, request, time.Now().Hour())
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination = utils.BuildPaginationResponse(pagination.Total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DoctorListSuccess, pagination, doctors)
}

func (ctrl *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.FindDoctorByID(ctx, doctorID, time.Now().Hour())
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorGetSuccess, doctor)
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctorID, err := ctrl.DoctorUsecase.CreateDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, map[string]string{"doctor_id": doctorID})
}

func (ctrl *DoctorController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	request := new(requests.UpdateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DoctorUsecase.UpdateDoctor(ctx, doctorID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, nil)
}

func (ctrl *DoctorController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DoctorUsecase.DeleteDoctorByID(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}

func (ctrl *DoctorController) UploadDoctorPhoto(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	request := new(requests.UploadDoctorPhoto)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Uploads push bytes to object storage, give them a little more room.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UploadDoctorPhoto(ctx, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorPhotoSuccess, response)
}

func parseListDoctorsQuery(query url.Values) (*requests.ListDoctors, error) {
	request := &requests.ListDoctors{
		SearchText: query.Get(constvars.URLQueryParamSearch),
		Specialty:  query.Get(constvars.URLQueryParamSpecialty),
		SortBy:     query.Get(constvars.URLQueryParamSortBy),
	}

	if raw := query.Get(constvars.URLQueryParamOpenOnly); raw != "" {
		openOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParams(err)
		}
		request.OpenOnly = openOnly
	}

	if raw := query.Get(constvars.URLQueryParamFavoritesOnly); raw != "" {
		favoritesOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParams(err)
		}
		request.FavoritesOnly = favoritesOnly
	}

	if raw := query.Get(constvars.URLQueryParamFavoriteIDs); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				request.FavoriteIDs = append(request.FavoriteIDs, id)
			}
		}
	}

	if raw := query.Get(constvars.URLQueryParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParams(err)
		}
		request.Page = page
	}

	if raw := query.Get(constvars.URLQueryParamPageSize); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParams(err)
		}
		request.PageSize = pageSize
	}

	return request, nil
}
