package models

// Identity is the authenticated principal produced by the identity provider.
type Identity struct {
	UID           string `json:"uid" validate:"required"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}
