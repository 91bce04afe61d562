package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reliefworks/reliefnet/algorithm"
	"github.com/stretchr/testify/require"
)

var (
	campLoc      = algorithm.Location{Lat: 9.9312, Lng: 76.2673}
	warehouseLoc = algorithm.Location{Lat: 8.5241, Lng: 76.9366}
)

func newTestClient(handler http.HandlerFunc) (*OSRMClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewOSRMClient(server.URL, time.Second)
	return client, server
}

func TestRoadDistanceDurationOK(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, "/route/v1/driving/")
		// coordinates are longitude,latitude pairs
		require.Contains(t, r.URL.Path, "76.267300,9.931200;76.936600,8.524100")
		require.Equal(t, "false", r.URL.Query().Get("overview"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":205460,"duration":10230}]}`))
	})
	defer server.Close()

	result := client.RoadDistanceDuration(context.Background(), campLoc, warehouseLoc)
	require.Equal(t, 205.46, result.DistanceKm)
	require.NotNil(t, result.DurationSeconds)
	require.Equal(t, float64(10230), *result.DurationSeconds)
}

func TestRoadDistanceDurationFallbacks(t *testing.T) {
	wantFallback := algorithm.GreatCircleKm(campLoc, warehouseLoc)

	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "BadCode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
			},
		},
		{
			name: "NoRoutes",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"code":"Ok","routes":[]}`))
			},
		},
		{
			name: "MalformedBody",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"code":`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(tc.handler)
			defer server.Close()

			result := client.RoadDistanceDuration(context.Background(), campLoc, warehouseLoc)
			require.Equal(t, wantFallback, result.DistanceKm)
			require.Nil(t, result.DurationSeconds)
		})
	}
}

func TestRoadDistanceDurationUnreachableProvider(t *testing.T) {
	// point at a closed server
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewOSRMClient(server.URL, 200*time.Millisecond)
	result := client.RoadDistanceDuration(context.Background(), campLoc, warehouseLoc)

	require.Equal(t, algorithm.GreatCircleKm(campLoc, warehouseLoc), result.DistanceKm)
	require.Nil(t, result.DurationSeconds)
	require.GreaterOrEqual(t, result.DistanceKm, float64(0))
}

func TestRoadDistanceDurationTimeout(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":1000,"duration":60}]}`))
	})
	defer server.Close()

	client.httpClient.Timeout = 50 * time.Millisecond
	result := client.RoadDistanceDuration(context.Background(), campLoc, warehouseLoc)
	require.Nil(t, result.DurationSeconds)
	require.Equal(t, algorithm.GreatCircleKm(campLoc, warehouseLoc), result.DistanceKm)
}

func TestRoadDistanceDurationInvalidCoordinates(t *testing.T) {
	called := false
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	result := client.RoadDistanceDuration(context.Background(), algorithm.Location{Lat: 95, Lng: 0}, warehouseLoc)
	require.False(t, called)
	require.Equal(t, float64(0), result.DistanceKm)
	require.Nil(t, result.DurationSeconds)
}
