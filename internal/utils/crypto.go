package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenBytes is the entropy of generated secrets. The hex encoding doubles
// it, matching the VARCHAR(64) token columns.
const TokenBytes = 32

// GenerateToken returns a cryptographically secure random hex string of
// 2*nBytes characters. Used for both deletion tokens and user tokens.
func GenerateToken(nBytes int) string {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate random token: %v", err))
	}
	return hex.EncodeToString(b)
}
