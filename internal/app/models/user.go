package models

import "time"

// User is the document in the users collection. Ratings mirrors every
// rating the user submitted, written as a second independent update after
// the doctor document (see the rating submission usecase).
type User struct {
	ID        string       `json:"id,omitempty" bson:"_id,omitempty"`
	Ratings   []UserRating `json:"ratings,omitempty" bson:"ratings,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time    `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

type UserRating struct {
	DoctorID  string    `json:"doctor_id" bson:"doctorId"`
	Score     int       `json:"score" bson:"score"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}
