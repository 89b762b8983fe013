package util

import (
	"github.com/google/uuid"
)

// NewRequestID returns a new random request ID
func NewRequestID() string {
	return uuid.New().String()
}
