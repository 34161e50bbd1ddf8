package service

// SessionTokenSource issues and hashes the opaque tokens that key
// server-side sessions. No payload is ever encoded into a token; the client
// holds a random value and the server holds its keyed hash.
type SessionTokenSource interface {
	// Generate returns a new random token and the hash to store for it.
	Generate() (token string, tokenHash string, err error)

	// Hash recomputes the stored hash for a presented token.
	Hash(token string) string
}
