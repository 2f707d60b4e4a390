package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const registrationTokenBytes = 16

// GenerateRegistrationToken returns a 32-character hex token from the
// OS entropy source.
func GenerateRegistrationToken() (string, error) {
	buf := make([]byte, registrationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
