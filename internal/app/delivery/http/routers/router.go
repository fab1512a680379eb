package routers

import (
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/delivery/http/middlewares"
	"docpoint-service/internal/app/services/core/auth"
	"docpoint-service/internal/app/services/core/devices"
	"docpoint-service/internal/app/services/core/doctors"
	"docpoint-service/internal/app/services/core/notifications"
	"docpoint-service/internal/app/services/core/rating"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	ratingController *rating.RatingController,
	deviceController *devices.DeviceController,
	authController *auth.AuthController,
	notificationController *notifications.NotificationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
				attachRatingRoutes(r, ratingController)
			})

			r.Route("/devices", func(r chi.Router) {
				attachDeviceRoutes(r, deviceController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})

			attachNotificationRoutes(r, middlewares, notificationController)
		})
	})
}
