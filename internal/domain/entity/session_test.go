package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	live := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, live.Expired(now))

	stale := &Session{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.Expired(now))

	// Expiry is exclusive: a session is dead at its exact expiry instant.
	boundary := &Session{ExpiresAt: now}
	assert.True(t, boundary.Expired(now))
}
