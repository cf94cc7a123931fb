package models

import "time"

const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

type Biometrics struct {
	Age    int     `json:"age" validate:"min=13,max=120"`
	Height float64 `json:"height" validate:"min=100,max=250"`
	Weight float64 `json:"weight" validate:"min=30,max=300"`
	Gender string  `json:"gender" validate:"required,oneof=male female other prefer_not_to_say"`
}

type UserProfile struct {
	UserID      string      `json:"userId" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	DisplayName string      `json:"displayName" validate:"max=80"`
	AvatarURL   *string     `json:"avatarUrl,omitempty"`
	Biometrics  *Biometrics `json:"biometrics,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
