package routers

import (
	"docpoint-service/internal/app/services/core/rating"
	"docpoint-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachRatingRoutes(router chi.Router, ratingController *rating.RatingController) {
	router.Post(fmt.Sprintf("/{%s}/ratings", constvars.URLParamDoctorID), ratingController.SubmitRating)
}
