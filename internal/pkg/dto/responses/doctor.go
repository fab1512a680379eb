package responses

import "docpoint-service/internal/pkg/ratings"

// DoctorView is the listing row: the stored fields plus the two derived
// ones (open/closed and the rating summary) computed per request.
type DoctorView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Specialties  []string        `json:"specialties,omitempty"`
	OpeningHours string          `json:"opening_hours,omitempty"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	IsOpen       bool            `json:"is_open"`
	Rating       ratings.Summary `json:"rating"`
}

// DoctorDetail adds the detail-only fields. HoursAvailable is false when
// the stored opening-hours text could not be parsed, so the client renders
// "hours unavailable" instead of a schedule.
type DoctorDetail struct {
	DoctorView
	HoursAvailable bool         `json:"hours_available"`
	Ratings        []RatingView `json:"ratings,omitempty"`
}

type RatingView struct {
	UserID  string `json:"user_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

type RatingSubmitted struct {
	DoctorID string          `json:"doctor_id"`
	Rating   ratings.Summary `json:"rating"`
}
