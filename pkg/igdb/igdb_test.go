package igdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gubu/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a fake token issuer and catalog.
func newTestClient(t *testing.T, catalogHandler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "test-client", r.FormValue("client_id"))
		assert.Equal(t, "test-secret", r.FormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","expires_in":5000}`))
	}))
	t.Cleanup(tokenServer.Close)

	catalogServer := httptest.NewServer(catalogHandler)
	t.Cleanup(catalogServer.Close)

	client := NewClient(config.IgdbConfiguration{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		TokenURL:     tokenServer.URL,
		APIURL:       catalogServer.URL,
	})

	return client, catalogServer
}

// The client must authenticate every call and forward the query untouched.
func TestFetchGames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "test-client", r.Header.Get("Client-ID"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "fields id, genres, platforms; where id = 7;", string(body))

		w.Write([]byte(`[{"id":7,"name":"Portal","genres":[5],"platforms":[6]}]`))
	})

	games, err := client.FetchGames(context.Background(),
		NewQuery("id", "genres", "platforms").Wheref("id = %d", 7).String())

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 7, games[0].ID)
	assert.Equal(t, "Portal", games[0].Name)
	assert.Equal(t, []int{5}, games[0].Genres)
	assert.Equal(t, []int{6}, games[0].Platforms)
}

// Non-2xx catalog answers surface as ErrUnavailable.
func TestFetchGamesBadStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	games, err := client.FetchGames(context.Background(), "fields name;")

	assert.Nil(t, games)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// A body that doesn't parse surfaces as ErrUnavailable.
func TestFetchGamesMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{definitely not json`))
	})

	games, err := client.FetchGames(context.Background(), "fields name;")

	assert.Nil(t, games)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// A failed token exchange fails the call before the catalog is reached.
func TestFetchGamesTokenFailure(t *testing.T) {
	catalogCalled := false
	catalogServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalogCalled = true
	}))
	defer catalogServer.Close()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer tokenServer.Close()

	client := NewClient(config.IgdbConfiguration{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		TokenURL:     tokenServer.URL,
		APIURL:       catalogServer.URL,
	})

	_, err := client.FetchGames(context.Background(), "fields name;")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, catalogCalled)
}

// The search proxy builds a popularity listing when the term is empty.
func TestSearchQueries(t *testing.T) {
	var received string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	_, err := client.Search(ctx, "zelda", "")
	require.NoError(t, err)
	assert.Contains(t, received, `search "zelda";`)
	assert.Contains(t, received, "parent_game = null & version_parent = null")
	assert.Contains(t, received, "limit 36;")

	_, err = client.Search(ctx, "   ", "")
	require.NoError(t, err)
	assert.NotContains(t, received, "search")
	assert.Contains(t, received, "rating_count >= 250")

	_, err = client.Search(ctx, "zelda", "rating > 80")
	require.NoError(t, err)
	assert.Contains(t, received, "& rating > 80;")
}

// The metadata proxy requests the expanded field list for one id.
func TestGameInfoQuery(t *testing.T) {
	var received string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.Write([]byte(`[{"id":1000,"name":"Portal","release_dates":[{"y":2007}]}]`))
	})

	details, err := client.GameInfo(context.Background(), 1000)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 2007, details[0].ReleaseDates[0].Year)
	assert.Contains(t, received, "cover.image_id")
	assert.Contains(t, received, "where id = 1000;")
}
