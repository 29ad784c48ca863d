package helper

import (
	"github.com/google/uuid"
)

// GivenUniqueID returns a fresh time-ordered UUID.
func GivenUniqueID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
