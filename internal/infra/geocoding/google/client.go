// Package google resolves postal addresses through the Google Geocoding HTTP API.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	geocodePath    = "/maps/api/geocode/json"
	statusOK       = "OK"
	defaultTimeout = 5 * time.Second
)

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type client struct {
	http    *resty.Client
	apiKey  string
	timeout time.Duration
	group   singleflight.Group
	logger  *slog.Logger
}

// Params holds dependencies for the geocoding client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Geocoder backed by the configured provider endpoint.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	if cfg == nil {
		cfg = &config.GeocodingConfig{}
	}

	return newClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, params.Logger)
}

func newClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger,
	}
}

// Geocode resolves the address to the coordinates of the first provider result.
// Identical concurrent lookups share one outbound request.
func (c *client) Geocode(ctx context.Context, address entity.PostalAddress) (entity.Coordinates, error) {
	query := address.String()
	if query == "" {
		return entity.Coordinates{}, domainerrors.ErrGeocodingUnresolved.WrapMessage("empty address")
	}

	key := address.CountryCode + "|" + query
	ch := c.group.DoChan(key, func() (any, error) {
		// Detached from the first caller so its cancellation does not fail the others.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		return c.lookup(lookupCtx, query, address.CountryCode)
	})

	select {
	case <-ctx.Done():
		return entity.Coordinates{}, domainerrors.ErrGeocodingUnresolved.WrapMessage(ctx.Err().Error())
	case res := <-ch:
		if res.Err != nil {
			return entity.Coordinates{}, res.Err
		}

		return res.Val.(entity.Coordinates), nil
	}
}

func (c *client) lookup(ctx context.Context, query, countryCode string) (entity.Coordinates, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("address", query).
		SetQueryParam("key", c.apiKey).
		ForceContentType("application/json").
		SetResult(&geocodeResponse{})
	if countryCode != "" {
		req.SetQueryParam("components", "country:"+countryCode)
	}

	resp, err := req.Get(geocodePath)
	if err != nil {
		return entity.Coordinates{}, c.unresolved(query, "request failed: "+err.Error())
	}
	if resp.StatusCode() != http.StatusOK {
		return entity.Coordinates{}, c.unresolved(query, "unexpected status "+resp.Status())
	}

	body, ok := resp.Result().(*geocodeResponse)
	if !ok || body == nil {
		return entity.Coordinates{}, c.unresolved(query, "empty response body")
	}
	if body.Status != statusOK {
		return entity.Coordinates{}, c.unresolved(query, "provider status "+body.Status+" "+body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return entity.Coordinates{}, c.unresolved(query, "zero results")
	}

	location := body.Results[0].Geometry.Location
	if location.Lat == nil || location.Lng == nil {
		return entity.Coordinates{}, c.unresolved(query, "result has no location")
	}

	return entity.Coordinates{Latitude: *location.Lat, Longitude: *location.Lng}, nil
}

func (c *client) unresolved(query, reason string) error {
	c.logger.Warn("Geocoding lookup unresolved", slog.String("address", query), slog.String("reason", reason))

	return domainerrors.ErrGeocodingUnresolved.WrapMessage(reason)
}
