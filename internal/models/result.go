package models

type SuccessResult struct {
	Success bool `json:"success"`
}

type SignUpResult struct {
	UserID      string  `json:"userId" validate:"required"`
	Email       string  `json:"email"`
	AccessToken *string `json:"accessToken,omitempty"`
}
