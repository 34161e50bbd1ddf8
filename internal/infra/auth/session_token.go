package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"lounas/config"
	"lounas/internal/domain/service"

	"github.com/pkg/errors"
)

const tokenByteLen = 32

// opaqueTokenSource issues random session tokens and stores an HMAC-SHA256
// of them, keyed by the configured secret. A database leak alone is not
// enough to forge a usable token.
type opaqueTokenSource struct {
	secret []byte
}

// NewSessionTokenSource is the constructor for opaqueTokenSource.
func NewSessionTokenSource(cfg *config.Config) service.SessionTokenSource {
	return &opaqueTokenSource{secret: []byte(cfg.SecretKey.Session)}
}

// Generate returns a new random token and the keyed hash to store for it.
func (s *opaqueTokenSource) Generate() (string, string, error) {
	raw := make([]byte, tokenByteLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes for session token")
	}

	token := base64.RawURLEncoding.EncodeToString(raw)

	return token, s.Hash(token), nil
}

// Hash recomputes the stored hash for a presented token.
func (s *opaqueTokenSource) Hash(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))

	return hex.EncodeToString(mac.Sum(nil))
}
