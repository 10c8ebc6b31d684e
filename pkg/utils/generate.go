package utils

import "github.com/google/uuid"

// GenerateRequestID returns a random UUIDv4 string.
func GenerateRequestID() string {
	return uuid.NewString()
}

// IsValidRequestID accepts client-supplied IDs only when they are UUIDs.
func IsValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
