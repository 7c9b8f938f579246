package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/domain/repository"
	"github.com/nightspots-catalog/internal/repository/seed"
)

type store struct {
	path   string
	logger *zap.Logger
}

// NewStore создает файловое хранилище коллекции: один JSON-файл
// с массивом записей, перезаписываемый целиком при каждом Save
func NewStore(path string, logger *zap.Logger) repository.VenueStore {
	return &store{
		path:   path,
		logger: logger,
	}
}

// Load читает коллекцию из файла. Отсутствующий файл и битый JSON
// не фатальны: обе ситуации откатываются на встроенный набор,
// который сразу записывается обратно. Каждая запись проходит repair.
func (s *store) Load(ctx context.Context) ([]domain.Venue, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("Collection file not found, seeding default dataset",
				zap.String("path", s.path))
			return s.seedAndPersist(ctx)
		}
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		s.logger.Warn("Stored collection is corrupted, falling back to default dataset",
			zap.String("path", s.path),
			zap.Error(err))
		return s.seedAndPersist(ctx)
	}

	for i := range venues {
		venues[i] = domain.RepairVenue(venues[i])
	}

	s.logger.Debug("Collection loaded",
		zap.String("path", s.path),
		zap.Int("count", len(venues)))
	return venues, nil
}

// Save сериализует и перезаписывает файл коллекции
func (s *store) Save(ctx context.Context, venues []domain.Venue) error {
	data, err := json.MarshalIndent(venues, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("Failed to write collection file",
			zap.String("path", s.path),
			zap.Error(err))
		return fmt.Errorf("failed to write collection file: %w", err)
	}

	s.logger.Debug("Collection saved",
		zap.String("path", s.path),
		zap.Int("count", len(venues)))
	return nil
}

func (s *store) seedAndPersist(ctx context.Context) ([]domain.Venue, error) {
	venues, err := seed.Venues()
	if err != nil {
		return nil, err
	}

	if err := s.Save(ctx, venues); err != nil {
		// Чтение остаётся fail-soft: коллекция по умолчанию отдаётся
		// даже если записать её не удалось
		s.logger.Warn("Failed to persist seeded collection", zap.Error(err))
	}

	return venues, nil
}
