package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/domain/repository"
	"github.com/nightspots-catalog/internal/repository/seed"
)

type venueStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewVenueStore создает redis-бэкенд хранилища коллекции: та же
// единственная запись с JSON-массивом, что и у файлового бэкенда,
// только под одним ключом без TTL
func NewVenueStore(r *Redis, key string) repository.VenueStore {
	return &venueStore{
		client: r.Client(),
		key:    key,
		logger: r.logger,
	}
}

// Load читает коллекцию из ключа с теми же fail-soft правилами,
// что и файловый бэкенд: нет ключа или битый JSON - встроенный набор
func (s *venueStore) Load(ctx context.Context) ([]domain.Venue, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		s.logger.Info("Collection key not found, seeding default dataset",
			zap.String("key", s.key))
		return s.seedAndPersist(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to read collection key", zap.String("key", s.key), zap.Error(err))
		return nil, fmt.Errorf("failed to read collection key: %w", err)
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		s.logger.Warn("Stored collection is corrupted, falling back to default dataset",
			zap.String("key", s.key),
			zap.Error(err))
		return s.seedAndPersist(ctx)
	}

	for i := range venues {
		venues[i] = domain.RepairVenue(venues[i])
	}

	s.logger.Debug("Collection loaded", zap.String("key", s.key), zap.Int("count", len(venues)))
	return venues, nil
}

// Save перезаписывает ключ целиком, без TTL
func (s *venueStore) Save(ctx context.Context, venues []domain.Venue) error {
	data, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.logger.Error("Failed to write collection key", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("failed to write collection key: %w", err)
	}

	s.logger.Debug("Collection saved", zap.String("key", s.key), zap.Int("count", len(venues)))
	return nil
}

func (s *venueStore) seedAndPersist(ctx context.Context) ([]domain.Venue, error) {
	venues, err := seed.Venues()
	if err != nil {
		return nil, err
	}

	if err := s.Save(ctx, venues); err != nil {
		s.logger.Warn("Failed to persist seeded collection", zap.Error(err))
	}

	return venues, nil
}
