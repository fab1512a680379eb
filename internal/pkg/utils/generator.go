package utils

import (
	"docpoint-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GeneratePhotoObjectName(doctorID, fileExtension string) string {
	return "doctors/" + doctorID + "/" + uuid.NewString() + fileExtension
}
