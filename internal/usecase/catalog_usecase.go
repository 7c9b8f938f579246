package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/domain/repository"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// Subscriber получает снимок коллекции после каждой принятой мутации
type Subscriber func(venues []domain.Venue)

// CatalogUseCase - авторитетная коллекция заведений в памяти.
// Каждая мутация атомарна: новая версия коллекции сначала сохраняется
// в хранилище и только после успешной записи становится видимой.
type CatalogUseCase struct {
	store  repository.VenueStore
	logger *zap.Logger

	mu          sync.RWMutex
	venues      []domain.Venue
	subscribers []Subscriber
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(store repository.VenueStore, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		store:  store,
		logger: logger,
	}
}

// Load читает коллекцию из хранилища; вызывается один раз при старте
func (uc *CatalogUseCase) Load(ctx context.Context) error {
	venues, err := uc.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	uc.mu.Lock()
	uc.venues = venues
	uc.mu.Unlock()

	uc.logger.Info("Venue collection loaded", zap.Int("count", len(venues)))
	return nil
}

// Subscribe регистрирует наблюдателя мутаций. Наблюдатели вызываются
// синхронно после фиксации, вне критической секции.
func (uc *CatalogUseCase) Subscribe(fn Subscriber) {
	uc.mu.Lock()
	uc.subscribers = append(uc.subscribers, fn)
	uc.mu.Unlock()
}

// Venues возвращает снимок коллекции
func (uc *CatalogUseCase) Venues() []domain.Venue {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	snapshot := make([]domain.Venue, len(uc.venues))
	copy(snapshot, uc.venues)
	return snapshot
}

// Get возвращает заведение по id
func (uc *CatalogUseCase) Get(id string) (domain.Venue, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, v := range uc.venues {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Venue{}, false
}

// Add добавляет заведение. Дубликат по паре (name, city) - молчаливый
// no-op: added=false без ошибки, коллекция не меняется.
func (uc *CatalogUseCase) Add(ctx context.Context, in dto.VenueInput) (*domain.Venue, bool, error) {
	uc.mu.Lock()

	if uc.keyExistsLocked(domain.VenueKey{Name: in.Name, City: in.City}) {
		uc.mu.Unlock()
		uc.logger.Debug("Duplicate venue skipped",
			zap.String("name", in.Name),
			zap.String("city", in.City))
		return nil, false, nil
	}

	venue := newVenue(in)
	next := append(uc.snapshotLocked(), venue)

	if err := uc.store.Save(ctx, next); err != nil {
		uc.mu.Unlock()
		uc.logger.Error("Failed to persist collection after add", zap.Error(err))
		return nil, false, err
	}

	uc.venues = next
	subs, snapshot := uc.commitLocked()
	uc.mu.Unlock()

	uc.logger.Info("Venue added",
		zap.String("id", venue.ID),
		zap.String("name", venue.Name),
		zap.String("city", venue.City))

	notify(subs, snapshot)
	return &venue, true, nil
}

// Update заменяет все поля заведения, кроме id и dateAdded.
// Неизвестный id - no-op: updated=false, коллекция не меняется.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.VenueInput) (*domain.Venue, bool, error) {
	uc.mu.Lock()

	idx := -1
	for i, v := range uc.venues {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		uc.mu.Unlock()
		uc.logger.Debug("Update for unknown venue ignored", zap.String("id", id))
		return nil, false, nil
	}

	updated := newVenue(in)
	updated.ID = uc.venues[idx].ID
	updated.DateAdded = uc.venues[idx].DateAdded

	next := uc.snapshotLocked()
	next[idx] = updated

	if err := uc.store.Save(ctx, next); err != nil {
		uc.mu.Unlock()
		uc.logger.Error("Failed to persist collection after update", zap.Error(err))
		return nil, false, err
	}

	uc.venues = next
	subs, snapshot := uc.commitLocked()
	uc.mu.Unlock()

	uc.logger.Info("Venue updated", zap.String("id", id))

	notify(subs, snapshot)
	return &updated, true, nil
}

// BulkAdd добавляет пачку кандидатов, отбрасывая дубликаты по (name, city)
// как против коллекции, так и внутри пачки (первый выигрывает).
// Хранилище записывается один раз на всю пачку.
func (uc *CatalogUseCase) BulkAdd(ctx context.Context, ins []dto.VenueInput) ([]domain.Venue, int, error) {
	uc.mu.Lock()

	accepted := make([]domain.Venue, 0, len(ins))
	batchKeys := make(map[domain.VenueKey]struct{}, len(ins))
	skipped := 0

	for _, in := range ins {
		key := domain.VenueKey{Name: in.Name, City: in.City}
		if _, dup := batchKeys[key]; dup || uc.keyExistsLocked(key) {
			skipped++
			continue
		}
		batchKeys[key] = struct{}{}
		accepted = append(accepted, newVenue(in))
	}

	if len(accepted) == 0 {
		uc.mu.Unlock()
		uc.logger.Info("Bulk add accepted no venues", zap.Int("skipped", skipped))
		return nil, skipped, nil
	}

	next := append(uc.snapshotLocked(), accepted...)

	if err := uc.store.Save(ctx, next); err != nil {
		uc.mu.Unlock()
		uc.logger.Error("Failed to persist collection after bulk add", zap.Error(err))
		return nil, 0, err
	}

	uc.venues = next
	subs, snapshot := uc.commitLocked()
	uc.mu.Unlock()

	uc.logger.Info("Venues imported",
		zap.Int("added", len(accepted)),
		zap.Int("skipped", skipped))

	notify(subs, snapshot)
	return accepted, skipped, nil
}

func (uc *CatalogUseCase) keyExistsLocked(key domain.VenueKey) bool {
	for _, v := range uc.venues {
		if v.Key() == key {
			return true
		}
	}
	return false
}

func (uc *CatalogUseCase) snapshotLocked() []domain.Venue {
	snapshot := make([]domain.Venue, len(uc.venues))
	copy(snapshot, uc.venues)
	return snapshot
}

func (uc *CatalogUseCase) commitLocked() ([]Subscriber, []domain.Venue) {
	subs := make([]Subscriber, len(uc.subscribers))
	copy(subs, uc.subscribers)
	return subs, uc.snapshotLocked()
}

func notify(subs []Subscriber, snapshot []domain.Venue) {
	for _, fn := range subs {
		fn(snapshot)
	}
}

// newVenue строит запись из проверенных данных формы: свежий uuid,
// текущий момент как dateAdded, нормализованные теги, цена по умолчанию
func newVenue(in dto.VenueInput) domain.Venue {
	price := in.Price
	if price < domain.PriceMin || price > domain.PriceMax {
		price = domain.PriceDefault
	}

	return domain.Venue{
		ID:        uuid.NewString(),
		Name:      in.Name,
		City:      in.City,
		Category:  in.Category,
		Cuisine:   in.Cuisine,
		Zone:      in.Zone,
		Address:   in.Address,
		Tags:      domain.NormalizeTags(in.Tags),
		Comments:  in.Comments,
		Rating:    in.Rating,
		Price:     price,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		DateAdded: time.Now().UTC(),
	}
}
