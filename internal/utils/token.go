package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
	"unicode"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const orderNumberLength = 9

// GenerateOrderNumber returns a short display token like "#K3F9A01ZQ".
// It is a human-facing label, not a primary key: collisions are possible
// at scale and deliberately not checked here.
func GenerateOrderNumber() string {
	var b strings.Builder
	b.WriteByte('#')

	size := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := 0; i < orderNumberLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(orderNumberAlphabet)))
		}
		b.WriteByte(orderNumberAlphabet[n.Int64()])
	}

	return b.String()
}

// Slug lowercases s and collapses runs of non-alphanumerics into single
// dashes: "Zaatar  Mix" -> "zaatar-mix".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
