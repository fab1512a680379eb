package responses

type AdminLogin struct {
	Token string `json:"token"`
}
