package requests

type BroadcastNotification struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=1000"`
}
