// Package igdb is the client for the IGDB game catalog. Queries are written
// in the Apicalypse filter syntax and authenticated with a Twitch OAuth2
// client credentials token.
package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gubu/pkg/config"
	"gubu/pkg/messages"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	gamesEndpoint     = "/games"
	requestTimeout    = 10 * time.Second
	requestsPerSecond = 4
	searchLimit       = 36
	popularMinRating  = 250
)

// ErrUnavailable marks any single failed catalog call: network failure,
// non-2xx response or a body that doesn't parse. Callers decide whether to
// retry, skip or abort.
var ErrUnavailable = errors.New("catalog unavailable")

// Game is the flat catalog record used by the recommendation flow. The
// genre and platform references are unexpanded catalog ids.
type Game struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Genres      []int   `json:"genres,omitempty"`
	Platforms   []int   `json:"platforms,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
}

// Named is any expanded catalog reference carrying just a name.
type Named struct {
	Name string `json:"name"`
}

// Image is an expanded cover, artwork or screenshot reference.
type Image struct {
	ImageID string `json:"image_id"`
}

// ReleaseDate is an expanded release date, only the year is requested.
type ReleaseDate struct {
	Year int `json:"y"`
}

// Platform is an expanded platform reference.
type Platform struct {
	Name           string `json:"name"`
	PlatformFamily *Named `json:"platform_family,omitempty"`
}

// Website is an expanded website reference.
type Website struct {
	Category int    `json:"category"`
	URL      string `json:"url"`
}

// GameDetail is the expanded catalog record served by the metadata and
// search proxy endpoints. Every field besides the id is optional on the
// catalog side and decoded defensively.
type GameDetail struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Summary      string        `json:"summary,omitempty"`
	Cover        *Image        `json:"cover,omitempty"`
	ReleaseDates []ReleaseDate `json:"release_dates,omitempty"`
	Genres       []Named       `json:"genres,omitempty"`
	Platforms    []Platform    `json:"platforms,omitempty"`
	Artworks     []Image       `json:"artworks,omitempty"`
	Screenshots  []Image       `json:"screenshots,omitempty"`
	Websites     []Website     `json:"websites,omitempty"`
}

// Client issues authenticated catalog queries. A bearer token is acquired
// per logical call; the credential is not cached between calls.
type Client struct {
	cfg        config.IgdbConfiguration
	httpClient *http.Client
	limiter    *RateLimiter
}

// NewClient creates a catalog client from the injected configuration.
func NewClient(cfg config.IgdbConfiguration) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    NewRateLimiter(requestsPerSecond, time.Second),
	}
}

// FetchGames runs a query against the games endpoint and returns the flat
// records.
func (c *Client) FetchGames(ctx context.Context, query string) ([]Game, error) {
	var games []Game
	if err := c.post(ctx, query, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// FetchGameDetails runs a query requesting expanded sub-fields.
func (c *Client) FetchGameDetails(ctx context.Context, query string) ([]GameDetail, error) {
	var games []GameDetail
	if err := c.post(ctx, query, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// detailFields is the field list served by the metadata proxy.
var detailFields = []string{
	"name", "id", "release_dates.y", "cover.image_id", "summary",
	"genres.name", "artworks.image_id", "screenshots.image_id",
	"platforms.name", "platforms.platform_family.name",
	"websites.category", "websites.url",
}

// searchFields is the smaller field list served by the search proxy.
var searchFields = []string{
	"name", "id", "release_dates.y", "cover.image_id", "platforms.name",
	"screenshots.image_id", "artworks.image_id",
}

// GameInfo fetches the full metadata of one game by its catalog id.
func (c *Client) GameInfo(ctx context.Context, igdbID int) ([]GameDetail, error) {
	query := NewQuery(detailFields...).Wheref("id = %d", igdbID)
	return c.FetchGameDetails(ctx, query.String())
}

// Search returns up to 36 games matching the search term, excluding
// expansions and remakes. An empty term lists well reviewed games instead,
// so the client can browse without a query. Extra raw filter conditions may
// be appended by the caller.
func (c *Client) Search(ctx context.Context, term string, extraFilters string) ([]GameDetail, error) {
	query := NewQuery(searchFields...)

	term = strings.TrimSpace(term)
	if term != "" {
		query.Search(term)
	} else {
		query.Wheref("rating_count >= %d", popularMinRating)
	}

	query.Where("parent_game = null").Where("version_parent = null")
	if extraFilters != "" {
		query.Where(extraFilters)
	}
	query.Limit(searchLimit)

	return c.FetchGameDetails(ctx, query.String())
}

// token acquires a bearer credential with the client credentials grant.
func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.RequestFailedMsg, ErrUnavailable, c.cfg.TokenURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: "+messages.BadStatusCodeMsg, ErrUnavailable, resp.StatusCode, c.cfg.TokenURL)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, messages.FailedToParseMsg)
	}

	return token.AccessToken, nil
}

// post sends one query body to the games endpoint and decodes the response.
func (c *Client) post(ctx context.Context, query string, dst any) error {
	c.limiter.Wait()

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.cfg.APIURL + gamesEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(query))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Client-ID", c.cfg.ClientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: "+messages.RequestFailedMsg, ErrUnavailable, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: "+messages.BadStatusCodeMsg, ErrUnavailable, resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, messages.FailedToParseMsg)
	}

	return nil
}
