package dto

// LoginRequest carries the shared admin credential.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the freshly minted bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// VerifyRequest checks whether a token is still in the active set.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse reports token validity.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
