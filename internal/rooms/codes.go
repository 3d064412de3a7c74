package rooms

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Room codes are read aloud and typed on phones, so the alphabet leaves out
// 0, O, 1, I and L.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 4

var alphabetSize = big.NewInt(int64(len(alphabet)))

func GenerateCode() (string, error) {
	var b strings.Builder
	b.Grow(codeLength)
	for range codeLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("reading random index: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeCode upper-cases and trims a code typed by a user. ok is false
// when the result could never have been generated.
func NormalizeCode(raw string) (code string, ok bool) {
	code = strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != codeLength {
		return code, false
	}
	for _, ch := range code {
		if !strings.ContainsRune(alphabet, ch) {
			return code, false
		}
	}
	return code, true
}
