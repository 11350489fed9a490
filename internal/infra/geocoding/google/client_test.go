package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddress = entity.PostalAddress{
	StreetLine1: "1600 Amphitheatre Parkway",
	City:        "Mountain View",
	Region:      "CA",
	ZipCode:     "94043",
	CountryCode: "US",
}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newClient(srv.URL, "test-key", timeout, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestGeocode_TakesFirstResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, geocodePath, r.URL.Path)
		assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA, 94043, US", r.URL.Query().Get("address"))
		assert.Equal(t, "country:US", r.URL.Query().Get("components"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		respond(`{"status":"OK","results":[
			{"geometry":{"location":{"lat":37.4224,"lng":-122.0842}}},
			{"geometry":{"location":{"lat":1,"lng":1}}}
		]}`)(w, r)
	}, time.Second)

	coords, err := c.Geocode(context.Background(), testAddress)

	require.NoError(t, err)
	assert.InDelta(t, 37.4224, coords.Latitude, 1e-9)
	assert.InDelta(t, -122.0842, coords.Longitude, 1e-9)
}

func TestGeocode_ZeroCoordinatesAreAccepted(t *testing.T) {
	c := newTestClient(t, respond(`{"status":"OK","results":[{"geometry":{"location":{"lat":0,"lng":0}}}]}`), time.Second)

	coords, err := c.Geocode(context.Background(), testAddress)

	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{}, coords)
}

func TestGeocode_FailuresAreUnresolved(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"zero results", respond(`{"status":"ZERO_RESULTS","results":[]}`)},
		{"ok status with empty results", respond(`{"status":"OK","results":[]}`)},
		{"ok status without results field", respond(`{"status":"OK"}`)},
		{"denied request", respond(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)},
		{"malformed body", respond(`{"status":"OK","results":[{`)},
		{"result without geometry", respond(`{"status":"OK","results":[{"formatted_address":"Dublin"}]}`)},
		{"location without longitude", respond(`{"status":"OK","results":[{"geometry":{"location":{"lat":53.35}}}]}`)},
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, time.Second)

			_, err := c.Geocode(context.Background(), testAddress)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved), "got %v", err)
		})
	}
}

func TestGeocode_TimeoutIsUnresolved(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	// Registered after the server so it runs before srv.Close.
	t.Cleanup(func() { close(release) })

	start := time.Now()
	_, err := c.Geocode(context.Background(), testAddress)

	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGeocode_NetworkErrorIsUnresolved(t *testing.T) {
	srv := httptest.NewServer(respond(`{}`))
	srv.Close()
	c := newClient(srv.URL, "test-key", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Geocode(context.Background(), testAddress)

	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))
}

func TestGeocode_EmptyAddressSkipsProvider(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, time.Second)

	_, err := c.Geocode(context.Background(), entity.PostalAddress{StreetLine1: "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))
	assert.Zero(t, hits.Load())
}

func TestGeocode_ConcurrentIdenticalLookupsShareOneRequest(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		respond(`{"status":"OK","results":[{"geometry":{"location":{"lat":10,"lng":20}}}]}`)(w, r)
	}, 5*time.Second)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]entity.Coordinates, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.Geocode(context.Background(), testAddress)
		}()
	}

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	// Give the remaining callers time to join the in-flight lookup.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, entity.Coordinates{Latitude: 10, Longitude: 20}, results[i])
	}
}

func TestGeocode_CallerCancellation(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 5*time.Second)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Geocode(ctx, testAddress)

	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))
}
