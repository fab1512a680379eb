package routers

import (
	"docpoint-service/internal/app/services/core/devices"

	"github.com/go-chi/chi/v5"
)

func attachDeviceRoutes(router chi.Router, deviceController *devices.DeviceController) {
	router.Post("/", deviceController.RegisterDevice)
}
