package routers

import (
	"docpoint-service/internal/app/delivery/http/middlewares"
	"docpoint-service/internal/app/services/core/doctors"
	"docpoint-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	doctorIDPath := fmt.Sprintf("/{%s}", constvars.URLParamDoctorID)

	router.Get("/", doctorController.ListDoctors)
	router.Get(doctorIDPath, doctorController.GetDoctorByID)

	router.With(middlewares.Authenticate).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate).Put(doctorIDPath, doctorController.UpdateDoctor)
	router.With(middlewares.Authenticate).Delete(doctorIDPath, doctorController.DeleteDoctor)
	router.With(middlewares.Authenticate).Post(doctorIDPath+"/photo", doctorController.UploadDoctorPhoto)
}
