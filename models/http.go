package models

// AccessToken is the response payload of the login endpoint.
// TokenType is always "bearer".
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewPassword is the request payload of the reset-password endpoint.
type NewPassword struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Msg is a generic informational response body.
type Msg struct {
	Msg string `json:"msg"`
}
