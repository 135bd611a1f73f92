package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/entities"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "geocode-resolver"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	Fallback entities.Coordinates
}

// Gateway - адаптер внешнего геокодера. Resolve отдает координаты или
// ошибку; Enrich поверх него - безопасная операция, которая никогда не
// фейлится и никогда не блокирует lifecycle дольше своего таймаута.
type Gateway struct {
	client   httpDoer
	retrier  retrier
	endpoint string
	timeout  time.Duration
	fallback entities.Coordinates
}

func New(client httpDoer, config Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: config.Endpoint,
		timeout:  config.Timeout,
		fallback: config.Fallback,
	}
}

type resolveResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (g *Gateway) Resolve(ctx context.Context, addressText string) (*entities.Coordinates, error) {
	if strings.TrimSpace(addressText) == "" {
		return nil, ErrAddressNotFound
	}

	requestURL := g.endpoint + "?q=" + url.QueryEscape(addressText)

	var coordinates *entities.Coordinates

	err := g.executeWithMetrics(ctx, "Resolve", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrResolverUnavailable, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrResolverUnavailable, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return ErrAddressNotFound
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("%w: unexpected status %d", ErrResolverUnavailable, resp.StatusCode)
		}

		var body resolveResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("%w: decode response: %w", ErrResolverUnavailable, err)
		}

		coordinates = &entities.Coordinates{
			Latitude:  body.Lat,
			Longitude: body.Lng,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gateway geocode, resolve: %w", err)
	}

	return coordinates, nil
}

// Enrich дополняет адрес координатами, не более одного Resolve на адрес.
// При любом сбое резолвера подставляются fallback-координаты: логистика
// должна ехать и при деградировавших картах.
func (g *Gateway) Enrich(ctx context.Context, address entities.Address) entities.Address {
	if address.HasCoordinates() {
		return address
	}

	resolveCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	coordinates, err := g.Resolve(resolveCtx, addressText(address))
	if err != nil {
		FallbackCoordinateTotal.Inc()
		address.Latitude = &g.fallback.Latitude
		address.Longitude = &g.fallback.Longitude
		return address
	}

	address.Latitude = &coordinates.Latitude
	address.Longitude = &coordinates.Longitude
	return address
}

func addressText(address entities.Address) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{address.Street, address.City, address.State, address.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	// нераспознанный адрес ретраить бессмысленно
	return !errors.Is(err, ErrAddressNotFound)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAddressNotFound):
		return "not_found"
	default:
		return "unavailable"
	}
}
