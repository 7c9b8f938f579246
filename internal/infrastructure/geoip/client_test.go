package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/config"
	apperrors "github.com/nightspots-catalog/internal/pkg/errors"
)

func TestClient_CurrentPosition(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/json", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"success","lat":45.4642,"lon":9.19}`))
		}))
		defer server.Close()

		client := NewClient(&config.GeoConfig{BaseURL: server.URL, RequestTimeout: 10}, logger)

		pos, err := client.CurrentPosition(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 45.4642, pos.Lat)
		assert.Equal(t, 9.19, pos.Lon)
	})

	t.Run("service failure status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}))
		defer server.Close()

		client := NewClient(&config.GeoConfig{BaseURL: server.URL, RequestTimeout: 10}, logger)

		_, err := client.CurrentPosition(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(&config.GeoConfig{BaseURL: server.URL, RequestTimeout: 10}, logger)

		_, err := client.CurrentPosition(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("invalid coordinates in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","lat":120.0,"lon":9.0}`))
		}))
		defer server.Close()

		client := NewClient(&config.GeoConfig{BaseURL: server.URL, RequestTimeout: 10}, logger)

		_, err := client.CurrentPosition(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("timeout is distinguishable", func(t *testing.T) {
		blocked := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-blocked
		}))
		defer server.Close()
		defer close(blocked)

		client := NewClient(&config.GeoConfig{BaseURL: server.URL, RequestTimeout: 10}, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.CurrentPosition(ctx)
		assert.ErrorIs(t, err, apperrors.ErrLocationTimeout)
	})
}
