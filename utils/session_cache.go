package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// sessionTTL bounds how stale a cached session snapshot may be. Revocations
// take effect immediately via InvalidateSession; the TTL only covers out-of-
// band edits to the user record.
const sessionTTL = 2 * time.Minute

// SessionSnapshot is the slice of a user record the auth middleware needs on
// every request.
type SessionSnapshot struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenHash string `json:"tokenHash"`
}

// SessionStore is the subset of redis commands the session cache uses.
type SessionStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var sessionStore SessionStore

// UseSessionStore swaps the backing store. InitCache installs the Redis
// cache client; tests install fakes. A nil store disables caching.
func UseSessionStore(s SessionStore) {
	sessionStore = s
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// GetCachedSession returns the cached snapshot for a user. A cache error is
// indistinguishable from a miss; the caller falls through to the database.
func GetCachedSession(userID string) (*SessionSnapshot, bool) {
	if sessionStore == nil {
		return nil, false
	}
	data, err := sessionStore.Get(context.Background(), sessionKey(userID)).Result()
	if err != nil {
		return nil, false
	}
	var snap SessionSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

// CacheSession stores a snapshot under the session TTL. Best effort; a
// failed write just means the next request reads the database again.
func CacheSession(userID string, snap SessionSnapshot) {
	if sessionStore == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	sessionStore.Set(context.Background(), sessionKey(userID), data, sessionTTL)
}

// InvalidateSession drops the cached snapshot so the next request re-reads
// the user record. Called whenever the stored token hash changes.
func InvalidateSession(userID string) {
	if sessionStore == nil {
		return
	}
	sessionStore.Del(context.Background(), sessionKey(userID))
}
