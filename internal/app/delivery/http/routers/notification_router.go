package routers

import (
	"docpoint-service/internal/app/delivery/http/middlewares"
	"docpoint-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Authenticate).Post("/notifications", notificationController.Broadcast)
}
