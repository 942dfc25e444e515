package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns a fresh random session token.
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ParseSessionToken accepts the token as it travels in a cookie or header.
func ParseSessionToken(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
