package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reliefworks/reliefnet/algorithm"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public OSRM demo server.
	DefaultBaseURL = "http://router.project-osrm.org"

	routeURL = "/route/v1/driving/"

	// One bounded attempt per call. The caller decides whether to retry;
	// routing unavailability is absorbed by the great-circle fallback.
	defaultTimeout = 5 * time.Second
)

// RouteResult is a road distance with an optional travel duration.
type RouteResult struct {
	DistanceKm      float64  `json:"distance_km"`
	DurationSeconds *float64 `json:"duration_seconds"` // nil when the provider was unreachable
}

// Client resolves road distance and travel duration between two points.
type Client interface {
	// RoadDistanceDuration never fails: on any provider error it degrades
	// to the great-circle distance with a nil duration.
	RoadDistanceDuration(ctx context.Context, from, to algorithm.Location) RouteResult
}

// OSRMClient talks to an OSRM routing server.
type OSRMClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRMClient creates an OSRM routing client. An empty baseURL selects the
// public demo server.
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OSRMClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ==================== API response structures ====================

type routeAPIResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// RoadDistanceDuration fetches the driving distance and duration between two
// points. Out-of-range coordinates and every provider failure (timeout,
// non-200, malformed body, no routes) fall back to the great-circle distance
// with a nil duration.
func (c *OSRMClient) RoadDistanceDuration(ctx context.Context, from, to algorithm.Location) RouteResult {
	if !algorithm.ValidLocation(from) || !algorithm.ValidLocation(to) {
		return fallback(from, to)
	}

	result, err := c.getRoute(ctx, from, to)
	if err != nil {
		log.Warn().Err(err).
			Float64("from_lat", from.Lat).
			Float64("from_lng", from.Lng).
			Float64("to_lat", to.Lat).
			Float64("to_lng", to.Lng).
			Msg("routing provider degraded, using great-circle fallback")
		return fallback(from, to)
	}
	return result
}

func (c *OSRMClient) getRoute(ctx context.Context, from, to algorithm.Location) (RouteResult, error) {
	// OSRM expects longitude,latitude pairs
	coords := fmt.Sprintf("%f,%f;%f,%f", from.Lng, from.Lat, to.Lng, to.Lat)
	reqURL := c.baseURL + routeURL + coords + "?overview=false"

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return RouteResult{}, err
	}

	var resp routeAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return RouteResult{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.Code != "Ok" {
		return RouteResult{}, fmt.Errorf("provider returned code %q", resp.Code)
	}
	if len(resp.Routes) == 0 {
		return RouteResult{}, fmt.Errorf("no route found")
	}

	duration := resp.Routes[0].Duration
	return RouteResult{
		DistanceKm:      algorithm.Round2(resp.Routes[0].Distance / 1000),
		DurationSeconds: &duration,
	}, nil
}

func (c *OSRMClient) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func fallback(from, to algorithm.Location) RouteResult {
	return RouteResult{
		DistanceKm:      algorithm.GreatCircleKm(from, to),
		DurationSeconds: nil,
	}
}
