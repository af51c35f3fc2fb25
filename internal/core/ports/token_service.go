package ports

// TokenClaims are the identity claims embedded in a session token. Roles
// are a snapshot taken at issuance and may drift from the stored roles
// until the token is re-issued.
type TokenClaims struct {
	UserID string
	Email  string
	Roles  []string
}

// TokenService mints and validates signed, time-bounded session tokens.
// Verify fails with domain.ErrTokenExpired past the embedded expiry and
// with domain.ErrTokenInvalid for structural or signature problems.
type TokenService interface {
	Issue(userID, email string, roles []string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
