package notifications

import (
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/requests"
	"docpoint-service/internal/pkg/exceptions"
	"docpoint-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) Broadcast(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BroadcastNotification)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Broadcast time grows with the audience, so no flat deadline here; the
	// usecase applies the publish timeout per batch.
	response, err := ctrl.NotificationUsecase.Broadcast(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.NotificationQueuedSuccess, response)
}
