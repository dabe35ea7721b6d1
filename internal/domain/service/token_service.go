package service

// TokenService defines the interface for issuing bearer tokens.
//
// Issued tokens are never validated by any route; there is deliberately no
// Verify counterpart here. Tokens also carry no expiration claim. Both are
// recorded defects of the API contract this service preserves.
type TokenService interface {
	// Issue signs a token carrying the given user identifier.
	Issue(userID string) (string, error)
}
