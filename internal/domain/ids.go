package domain

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewSessionID returns an opaque collision-free session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// NewOrderID returns a prefixed human-readable order id, e.g. ORD-3FA94C21.
// Clients must treat it as opaque.
func NewOrderID() string {
	return "ORD-" + randomHex(4)
}

// NewTransactionID returns a prefixed payment transaction id.
func NewTransactionID() string {
	return "TXN-" + randomHex(5)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
