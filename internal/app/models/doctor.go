package models

import "time"

// Doctor is the document stored in the doctors collection. OpeningHours is
// free text and is not validated at write time; the listing and detail
// views parse it on every read.
type Doctor struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Specialties  []string  `json:"specialties,omitempty" bson:"specialties,omitempty"`
	OpeningHours string    `json:"opening_hours,omitempty" bson:"openingHours,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty" bson:"photoUrl,omitempty"`
	Ratings      []Rating  `json:"ratings,omitempty" bson:"ratings,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// Rating is a single user rating embedded in a doctor document. Insertion
// order is chronological; aggregation does not depend on it.
type Rating struct {
	UserID    string    `json:"user_id" bson:"userId"`
	Score     int       `json:"score" bson:"score"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}

// RatingScores extracts the raw score values for aggregation.
func (d *Doctor) RatingScores() []int {
	scores := make([]int, 0, len(d.Ratings))
	for _, rating := range d.Ratings {
		scores = append(scores, rating.Score)
	}
	return scores
}
