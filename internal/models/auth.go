package models

// AuthRecord is the singleton admin credential. PasswordHash is either the
// legacy rolling hash (a decimal integer string) or a bcrypt hash.
type AuthRecord struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
