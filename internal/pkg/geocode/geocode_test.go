package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "geocoder-test"})
	return NewClient(baseURL, "hostelhub-test/1.0", time.Minute, breaker)
}

func TestForwardResolvesAddress(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "12 Campus Road", r.URL.Query().Get("q"))
		assert.Equal(t, "hostelhub-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"51.5074","lon":"-0.1278"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	coords, err := client.Forward(context.Background(), "12 Campus Road")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.InDelta(t, 51.5074, coords.Latitude, 1e-9)
	assert.InDelta(t, -0.1278, coords.Longitude, 1e-9)
	assert.Equal(t, 1, hits)
}

func TestForwardCachesResults(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for i := 0; i < 3; i++ {
		coords, err := client.Forward(context.Background(), "5 Rue du Campus")
		require.NoError(t, err)
		require.NotNil(t, coords)
	}
	assert.Equal(t, 1, hits)
}

func TestForwardEmptyAddressSkipsLookup(t *testing.T) {
	client := newTestClient("http://unreachable.invalid")

	coords, err := client.Forward(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestForwardUnknownAddressReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	coords, err := client.Forward(context.Background(), "Nowhere In Particular")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestForwardProviderErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Forward(context.Background(), "12 Campus Road")
	assert.Error(t, err)
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "geocoder-test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	client := NewClient(server.URL, "hostelhub-test/1.0", time.Minute, breaker)

	for i := 0; i < 3; i++ {
		_, err := client.Forward(context.Background(), "12 Campus Road")
		assert.Error(t, err)
	}

	_, err := client.Forward(context.Background(), "12 Campus Road")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
