package shared

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const identityKeyPrefix = "identity:session:"

// IdentityStore resolves session tokens to user IDs. Tokens are minted by
// the upstream auth service; this store only reads them. An unknown or
// missing token is not an error, it is an anonymous request.
type IdentityStore struct {
	client     *redis.Client
	cookieName string
}

// NewIdentityStore constructs an IdentityStore.
func NewIdentityStore(client *redis.Client, cookieName string) *IdentityStore {
	return &IdentityStore{client: client, cookieName: cookieName}
}

// CookieName returns the cookie carrying the session token.
func (s *IdentityStore) CookieName() string {
	return s.cookieName
}

// UserID resolves the request's session cookie to a user ID. The second
// return value reports whether an identity was found.
func (s *IdentityStore) UserID(ctx context.Context, r *http.Request) (int64, bool, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return 0, false, nil
		}
		return 0, false, err
	}
	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return 0, false, nil
	}

	raw, err := s.client.Get(ctx, identityKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		// Malformed session payloads resolve to anonymous, never to an error.
		return 0, false, nil
	}
	return id, true, nil
}
