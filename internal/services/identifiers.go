package services

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber returns a human-readable order code, e.g.
// "ORD-3F2A1B9C0D". Uniqueness is enforced by the column constraint, not by
// the generator alone.
func GenerateOrderNumber() string {
	return "ORD-" + randomToken(10)
}

// GenerateReferralCode returns a 10-character shareable invite code.
func GenerateReferralCode() string {
	return randomToken(10)
}

func randomToken(n int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:n])
}
