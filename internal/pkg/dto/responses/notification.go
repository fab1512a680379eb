package responses

type NotificationBroadcast struct {
	Tokens  int `json:"tokens"`
	Batches int `json:"batches"`
}

type DoctorPhoto struct {
	PhotoURL string `json:"photo_url"`
}
