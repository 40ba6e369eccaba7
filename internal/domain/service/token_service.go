package service

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given subject.
	Issue(userID string) (string, error)

	// Verify checks the token's signature and expiry and returns the
	// embedded subject ID. It makes no further trust decision: the subject
	// is not looked up in the store, so a deleted user's unexpired token
	// still verifies.
	Verify(token string) (string, error)
}
