package requests

type SubmitRating struct {
	UserID  string `json:"user_id" validate:"required"`
	Score   int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
}
