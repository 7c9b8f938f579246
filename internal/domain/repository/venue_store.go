package repository

import (
	"context"

	"github.com/nightspots-catalog/internal/domain"
)

// VenueStore - долговременное хранилище коллекции заведений.
// Коллекция читается один раз при старте и целиком перезаписывается
// после каждой принятой мутации.
type VenueStore interface {
	// Load возвращает восстановленную коллекцию; при отсутствии или порче
	// данных реализация обязана вернуть встроенный набор по умолчанию
	Load(ctx context.Context) ([]domain.Venue, error)

	// Save сериализует и перезаписывает всю коллекцию
	Save(ctx context.Context, venues []domain.Venue) error
}
