package utils

import (
	"github.com/google/uuid"
)

// NewID returns a random UUID string for request and journal identifiers
func NewID() string {
	return uuid.New().String()
}
