package utils

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// LegacyHash computes the 32-bit rolling hash the original server stored
// credentials with: h = (h<<5) - h + codeUnit over UTF-16 code units,
// wrapping at 32 bits, rendered as a signed decimal string. It is
// deterministic and collision-prone; it exists only for compatibility with
// previously written auth records, not for security.
func LegacyHash(s string) string {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(cu)
	}
	return strconv.FormatInt(int64(h), 10)
}

// CheckPassword verifies a plaintext password against a stored hash.
// Bcrypt hashes (the "$2" prefix) are honoured so an operator can upgrade
// the stored credential; anything else is compared as a legacy hash.
func CheckPassword(password, storedHash string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	return LegacyHash(password) == storedHash
}

// HashPassword hashes a plaintext password with bcrypt for operators who
// want to replace the legacy hash in auth.json.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
