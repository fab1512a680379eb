package models

import "time"

// DeviceToken is a push-capable device registration, upserted by token so
// re-registering the same device never duplicates it.
type DeviceToken struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Token     string    `json:"token" bson:"token"`
	Platform  string    `json:"platform,omitempty" bson:"platform,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}
