package dto

import "grandhotel/infras/jwt"

type LoginRequest struct {
	PIN string `json:"pin" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

// Export is a rendered CSV document ready to be served as an attachment.
type Export struct {
	FileName string
	Content  string
	Rows     int
}
