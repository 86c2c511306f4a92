package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*IdentityStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdentityStore(client, "jalon_session"), mr
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "jalon_session", Value: token})
	}
	return req
}

func TestIdentityStoreResolvesUser(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set("identity:session:tok-1", "42")

	id, ok, err := store.UserID(context.Background(), requestWithCookie("tok-1"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42), id)
}

func TestIdentityStoreMissingCookieIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t)

	id, ok, err := store.UserID(context.Background(), requestWithCookie(""))
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, id)
}

func TestIdentityStoreUnknownTokenIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.UserID(context.Background(), requestWithCookie("expired"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIdentityStoreMalformedPayloadIsAnonymous(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set("identity:session:tok-2", "not-a-user-id")
	mr.Set("identity:session:tok-3", "-5")

	for _, token := range []string{"tok-2", "tok-3"} {
		_, ok, err := store.UserID(context.Background(), requestWithCookie(token))
		require.NoError(t, err)
		require.False(t, ok)
	}
}
