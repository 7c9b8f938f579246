package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/usecase"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// MockVenueStore is a mock of VenueStore
type MockVenueStore struct {
	mock.Mock
}

func (m *MockVenueStore) Load(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueStore) Save(ctx context.Context, venues []domain.Venue) error {
	args := m.Called(ctx, venues)
	return args.Error(0)
}

func newLoadedCatalog(t *testing.T, store *MockVenueStore, initial []domain.Venue) *usecase.CatalogUseCase {
	t.Helper()
	store.On("Load", mock.Anything).Return(initial, nil).Once()
	uc := usecase.NewCatalogUseCase(store, zap.NewNop())
	require.NoError(t, uc.Load(context.Background()))
	return uc
}

func barX(zone string) dto.VenueInput {
	return dto.VenueInput{
		Name:     "Bar X",
		City:     "Milano",
		Category: domain.CategoryBar,
		Zone:     zone,
		Rating:   4,
	}
}

func TestCatalogUseCase_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and dateAdded and persists", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		venue, added, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)
		assert.True(t, added)
		require.NotNil(t, venue)
		assert.NotEmpty(t, venue.ID)
		assert.False(t, venue.DateAdded.IsZero())
		assert.Equal(t, domain.PriceDefault, venue.Price)

		store.AssertExpectations(t)
	})

	t.Run("duplicate name and city is a silent no-op", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		_, added, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)
		require.True(t, added)

		// Повторное добавление той же пары (name, city) с другой зоной
		venue, added, err := uc.Add(ctx, barX("Brera"))
		require.NoError(t, err)
		assert.False(t, added)
		assert.Nil(t, venue)

		// Коллекция не изменилась, исходная зона сохранена
		venues := uc.Venues()
		require.Len(t, venues, 1)
		assert.Equal(t, "Navigli", venues[0].Zone)

		// Save вызван только один раз
		store.AssertExpectations(t)
	})

	t.Run("failed save leaves collection untouched", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		_, added, err := uc.Add(ctx, barX("Navigli"))
		assert.Error(t, err)
		assert.False(t, added)
		assert.Empty(t, uc.Venues())
	})

	t.Run("notifies subscribers after commit", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		var seen int
		uc.Subscribe(func(venues []domain.Venue) {
			seen = len(venues)
		})

		_, _, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)
		assert.Equal(t, 1, seen)
	})
}

func TestCatalogUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves id and dateAdded", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)

		created, _, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)

		in := barX("Navigli")
		in.Name = "Bar X Rinnovato"
		in.Rating = 5

		updated, ok, err := uc.Update(ctx, created.ID, in)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.DateAdded, updated.DateAdded)
		assert.Equal(t, "Bar X Rinnovato", updated.Name)
		assert.Equal(t, 5, updated.Rating)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)

		venue, ok, err := uc.Update(ctx, "no-such-id", barX("Navigli"))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, venue)
		assert.Empty(t, uc.Venues())
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCatalogUseCase_BulkAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("skips duplicates inside the batch, first occurrence wins", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		added, skipped, err := uc.BulkAdd(ctx, []dto.VenueInput{
			{Name: "A", City: "Milano", Category: domain.CategoryBar, Zone: "first"},
			{Name: "A", City: "Milano", Category: domain.CategoryBar, Zone: "second"},
		})
		require.NoError(t, err)
		assert.Len(t, added, 1)
		assert.Equal(t, 1, skipped)
		assert.Equal(t, "first", added[0].Zone)

		// Одна запись в хранилище на всю пачку
		store.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("skips candidates already in the collection", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, _, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)

		added, skipped, err := uc.BulkAdd(ctx, []dto.VenueInput{
			barX("Brera"),
			{Name: "B", City: "Milano", Category: domain.CategoryClub},
		})
		require.NoError(t, err)
		assert.Len(t, added, 1)
		assert.Equal(t, 1, skipped)
		assert.Equal(t, "B", added[0].Name)
	})

	t.Run("empty acceptance does not touch the store", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		_, _, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)

		added, skipped, err := uc.BulkAdd(ctx, []dto.VenueInput{barX("Brera")})
		require.NoError(t, err)
		assert.Empty(t, added)
		assert.Equal(t, 1, skipped)
		store.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("uniqueness invariant holds across add and bulkAdd", func(t *testing.T) {
		store := &MockVenueStore{}
		uc := newLoadedCatalog(t, store, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, _, err := uc.Add(ctx, barX("Navigli"))
		require.NoError(t, err)
		_, _, err = uc.BulkAdd(ctx, []dto.VenueInput{
			barX("Brera"),
			{Name: "B", City: "Milano", Category: domain.CategoryClub},
			{Name: "B", City: "Milano", Category: domain.CategoryClub},
			{Name: "B", City: "Torino", Category: domain.CategoryClub},
		})
		require.NoError(t, err)

		seen := make(map[domain.VenueKey]struct{})
		for _, v := range uc.Venues() {
			key := v.Key()
			_, dup := seen[key]
			assert.False(t, dup, "duplicate key %v", key)
			seen[key] = struct{}{}
		}
		assert.Len(t, uc.Venues(), 3)
	})
}

func TestCatalogUseCase_Get(t *testing.T) {
	store := &MockVenueStore{}
	uc := newLoadedCatalog(t, store, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	created, _, err := uc.Add(context.Background(), barX("Navigli"))
	require.NoError(t, err)

	got, ok := uc.Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	_, ok = uc.Get("missing")
	assert.False(t, ok)
}
