// Package geoip реализует источник текущих координат поверх
// HTTP-сервиса геолокации (формат ответа совместим с ip-api.com).
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/config"
	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/domain/repository"
	apperrors "github.com/nightspots-catalog/internal/pkg/errors"
	"github.com/nightspots-catalog/internal/pkg/utils"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент сервиса геолокации
func NewClient(cfg *config.GeoConfig, logger *zap.Logger) repository.Locator {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type positionResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentPosition запрашивает текущие координаты. Бюджет запроса
// ограничен таймаутом httpClient; превышение различимо как
// ErrLocationTimeout, остальные сбои - как ErrLocationUnavailable.
func (c *client) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	url := fmt.Sprintf("%s/json", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create position request", zap.Error(err))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.logger.Warn("Position request timed out", zap.Error(err))
			return domain.Coordinate{}, apperrors.ErrLocationTimeout
		}
		c.logger.Error("Position request failed", zap.Error(err))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Geolocation service returned error",
			zap.Int("status_code", resp.StatusCode))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
		})
	}

	var posResp positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&posResp); err != nil {
		c.logger.Error("Failed to decode position response", zap.Error(err))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable
	}

	if posResp.Status != "success" {
		c.logger.Warn("Geolocation service refused the request",
			zap.String("status", posResp.Status),
			zap.String("message", posResp.Message))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable.WithDetails(map[string]interface{}{
			"message": posResp.Message,
		})
	}

	if !utils.ValidateCoordinates(posResp.Lat, posResp.Lon) {
		c.logger.Error("Geolocation service returned invalid coordinates",
			zap.Float64("lat", posResp.Lat),
			zap.Float64("lon", posResp.Lon))
		return domain.Coordinate{}, apperrors.ErrLocationUnavailable
	}

	c.logger.Debug("Position acquired",
		zap.Float64("lat", posResp.Lat),
		zap.Float64("lon", posResp.Lon))

	return domain.Coordinate{Lat: posResp.Lat, Lon: posResp.Lon}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
