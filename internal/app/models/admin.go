package models

type Admin struct {
	ID           string `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"passwordHash"`
}
