package services

import (
	"time"

	"github.com/google/uuid"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func newID() string {
	return uuid.NewString()
}
