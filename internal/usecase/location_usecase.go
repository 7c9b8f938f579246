package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/domain/repository"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// LocationUseCase - текущая позиция устройства. Запрос однократный и
// явный; автоматических повторов нет. Позиции моложе maxAge отдаются
// из кеша без обращения к внешнему сервису.
type LocationUseCase struct {
	locator repository.Locator
	logger  *zap.Logger
	maxAge  time.Duration

	mu         sync.Mutex
	current    *domain.Coordinate
	obtainedAt time.Time
	seq        uint64
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(locator repository.Locator, maxAge time.Duration, logger *zap.Logger) *LocationUseCase {
	return &LocationUseCase{
		locator: locator,
		logger:  logger,
		maxAge:  maxAge,
	}
}

// RequestCurrentLocation получает текущие координаты. При перекрытии
// запросов состояние определяет самый поздний: ответ, пришедший после
// старта более нового запроса, не фиксируется. Сбой оставляет последнюю
// известную позицию нетронутой.
func (uc *LocationUseCase) RequestCurrentLocation(ctx context.Context) (domain.Coordinate, error) {
	uc.mu.Lock()
	if uc.current != nil && time.Since(uc.obtainedAt) <= uc.maxAge {
		cached := *uc.current
		uc.mu.Unlock()
		uc.logger.Debug("Serving cached position",
			zap.Float64("lat", cached.Lat),
			zap.Float64("lon", cached.Lon))
		return cached, nil
	}
	uc.seq++
	seq := uc.seq
	uc.mu.Unlock()

	pos, err := uc.locator.CurrentPosition(ctx)
	if err != nil {
		uc.logger.Warn("Failed to acquire position", zap.Error(err))
		return domain.Coordinate{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq != uc.seq {
		// Пока ждали ответ, стартовал более новый запрос - его результат
		// авторитетен, наш не фиксируется
		uc.logger.Debug("Discarding superseded position result")
		return pos, nil
	}

	uc.current = &pos
	uc.obtainedAt = time.Now()

	uc.logger.Info("Position updated",
		zap.Float64("lat", pos.Lat),
		zap.Float64("lon", pos.Lon))
	return pos, nil
}

// CurrentLocation возвращает последнюю известную позицию или nil
func (uc *LocationUseCase) CurrentLocation() *domain.Coordinate {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil
	}
	loc := *uc.current
	return &loc
}

// CurrentLocationDTO возвращает позицию с моментом получения
func (uc *LocationUseCase) CurrentLocationDTO() *dto.LocationDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil
	}
	return &dto.LocationDTO{
		Lat:        uc.current.Lat,
		Lon:        uc.current.Lon,
		ObtainedAt: uc.obtainedAt,
	}
}
