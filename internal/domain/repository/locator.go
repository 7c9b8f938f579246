package repository

import (
	"context"

	"github.com/nightspots-catalog/internal/domain"
)

// Locator - внешний источник текущих координат устройства
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}
