package devices

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DeviceController struct {
	Log           *zap.Logger
	DeviceUsecase contracts.DeviceUsecase
}

func NewDeviceController(logger *zap.Logger, deviceUsecase contracts.DeviceUsecase) *DeviceController {
	return &DeviceController{
		Log:           logger,
		DeviceUsecase: deviceUsecase,
	}
}

func (ctrl *DeviceController) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterDevice)
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

	if err := ctrl.DeviceUsecase.RegisterDevice(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DeviceRegisteredSuccess, nil)
}
