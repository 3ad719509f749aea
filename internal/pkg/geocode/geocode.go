package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// Coordinates is a resolved latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a free-text address to coordinates, or nil when the
// address is unknown.
type Geocoder interface {
	Forward(ctx context.Context, address string) (*Coordinates, error)
}

// Client calls a Nominatim-style search endpoint. Lookups run behind a
// circuit breaker and successful results are cached, since hostel
// addresses change rarely.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker
	cache     *gocache.Cache
}

// NewClient creates a geocoding client.
func NewClient(baseURL, userAgent string, cacheTTL time.Duration, breaker *gobreaker.CircuitBreaker) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
		breaker:   breaker,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
	}
}

var _ Geocoder = (*Client)(nil)

// Forward geocodes an address. A miss at the provider returns (nil, nil).
func (c *Client) Forward(ctx context.Context, address string) (*Coordinates, error) {
	if address == "" {
		return nil, nil
	}

	if cached, found := c.cache.Get(address); found {
		coords := cached.(Coordinates)
		return &coords, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.lookup(ctx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}

	coords, _ := result.(*Coordinates)
	if coords != nil {
		c.cache.Set(address, *coords, gocache.DefaultExpiration)
	}
	return coords, nil
}

func (c *Client) lookup(ctx context.Context, address string) (*Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(results) == 0 {
		logger.Debug().Str("address", address).Msg("Geocoder found no match")
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}

	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}
