// Package uuid generates and validates the string identifiers used as
// primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7. Version 7 ids start with a millisecond Unix
// timestamp, so ids created later sort after ids created earlier, which
// keeps ORDER BY id stable as a tie-breaker for rows sharing a date.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates a UUID string and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
