package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ==================== RESET TOKEN ====================

// GenerateResetToken returns a 256-bit random token as hex. Only its digest
// is ever stored; the raw value goes into the reset link.
func GenerateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashToken returns the SHA-256 hex digest of a raw token
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ==================== RECEIPT ID ====================

// GenerateReceiptID creates the receipt reference sent to the payment gateway
func GenerateReceiptID() string {
	return fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
}
