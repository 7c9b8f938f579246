package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/usecase"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func sampleVenues() []domain.Venue {
	lat1, lon1 := coords(45.0, 9.0)
	lat2, lon2 := coords(46.0, 9.0)

	return []domain.Venue{
		{
			ID: "v1", Name: "Alba", City: "Milano", Category: domain.CategoryBar,
			Cuisine: "italian", Zone: "Navigli", Tags: []string{"wine"},
			Rating: 3, Price: 2, Latitude: lat1, Longitude: lon1,
			DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "v2", Name: "Bruma", City: "Milano", Category: domain.CategoryCocktail,
			Cuisine: "fusion", Zone: "Brera", Tags: []string{"rooftop", "view"},
			Rating: 5, Price: 4, Latitude: lat2, Longitude: lon2,
			DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "v3", Name: "Circe", City: "Torino", Category: domain.CategoryBar,
			Cuisine: "italian", Zone: "Centro", Tags: []string{"aperitivo classico"},
			Rating: 5, Price: 3,
			DateAdded: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ids(venues []domain.Venue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.ID
	}
	return out
}

func TestDeriveView_Search(t *testing.T) {
	venues := sampleVenues()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{SearchText: "alBA"})
		assert.Equal(t, []string{"v1"}, ids(got))
	})

	t.Run("matches tags, zone and city", func(t *testing.T) {
		assert.Equal(t, []string{"v2"}, ids(usecase.DeriveView(venues, domain.QuerySpec{SearchText: "roofto"})))
		assert.Equal(t, []string{"v2"}, ids(usecase.DeriveView(venues, domain.QuerySpec{SearchText: "brera"})))
		assert.Equal(t, []string{"v3"}, ids(usecase.DeriveView(venues, domain.QuerySpec{SearchText: "torino"})))
	})

	t.Run("does not match comments or address", func(t *testing.T) {
		withComment := sampleVenues()
		withComment[0].Comments = "hidden gem"
		got := usecase.DeriveView(withComment, domain.QuerySpec{SearchText: "hidden gem"})
		assert.Empty(t, got)
	})
}

func TestDeriveView_Filters(t *testing.T) {
	venues := sampleVenues()

	t.Run("filters apply independently with AND semantics", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{Filters: domain.Filters{
			Category: domain.CategoryBar,
			Cuisine:  "italian",
		}})
		for _, v := range got {
			assert.Equal(t, domain.CategoryBar, v.Category)
			assert.Equal(t, "italian", v.Cuisine)
		}
		assert.Len(t, got, 2)
	})

	t.Run("zone filter is a case-insensitive substring", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{Filters: domain.Filters{Zone: "navi"}})
		assert.Equal(t, []string{"v1"}, ids(got))
	})

	t.Run("min rating keeps venues at or above threshold", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{Filters: domain.Filters{MinRating: 4}})
		for _, v := range got {
			assert.GreaterOrEqual(t, v.Rating, 4)
		}
		assert.Len(t, got, 2)
	})

	t.Run("zero min rating is inactive", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{})
		assert.Len(t, got, 3)
	})

	t.Run("membership matches conjunction of every active predicate", func(t *testing.T) {
		spec := domain.QuerySpec{
			SearchText: "a",
			Filters:    domain.Filters{Category: domain.CategoryBar, Cuisine: "italian", Zone: "c", MinRating: 4},
		}
		got := usecase.DeriveView(venues, spec)
		assert.Equal(t, []string{"v3"}, ids(got))
	})
}

func TestDeriveView_Sort(t *testing.T) {
	venues := sampleVenues()

	t.Run("default sort is rating desc with name asc tie-break", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{})
		assert.Equal(t, []string{"v2", "v3", "v1"}, ids(got))
	})

	t.Run("name ascending and descending", func(t *testing.T) {
		asc := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByName, Direction: domain.SortAsc},
		})
		assert.Equal(t, []string{"v1", "v2", "v3"}, ids(asc))

		desc := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByName, Direction: domain.SortDesc},
		})
		assert.Equal(t, []string{"v3", "v2", "v1"}, ids(desc))
	})

	t.Run("dateAdded is chronological", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByDateAdded, Direction: domain.SortAsc},
		})
		assert.Equal(t, []string{"v1", "v2", "v3"}, ids(got))
	})

	t.Run("price numeric descending", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByPrice, Direction: domain.SortDesc},
		})
		assert.Equal(t, []string{"v2", "v3", "v1"}, ids(got))
	})

	t.Run("stable: equal keys preserve filtered order", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByRating, Direction: domain.SortDesc},
		})
		// v2 и v3 оба с рейтингом 5 - исходный порядок сохраняется
		assert.Equal(t, []string{"v2", "v3", "v1"}, ids(got))
	})

	t.Run("sorting twice yields the same order", func(t *testing.T) {
		spec := domain.QuerySpec{Sort: &domain.SortSpec{Field: domain.SortByRating, Direction: domain.SortDesc}}
		first := usecase.DeriveView(venues, spec)
		second := usecase.DeriveView(first, spec)
		assert.Equal(t, ids(first), ids(second))
	})
}

func TestDeriveView_DistanceSort(t *testing.T) {
	venues := sampleVenues()
	loc := &domain.Coordinate{Lat: 45.0, Lon: 9.0}

	t.Run("ascending distance orders near to far, missing coordinates last", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{
			Sort:     &domain.SortSpec{Field: domain.SortByDistance, Direction: domain.SortAsc},
			Location: loc,
		})
		// v1 на точке (0 км), v2 на градус севернее (~111 км), v3 без координат
		require.Len(t, got, 3)
		assert.Equal(t, []string{"v1", "v2", "v3"}, ids(got))
	})

	t.Run("without a known location distance sort is a no-op", func(t *testing.T) {
		got := usecase.DeriveView(venues, domain.QuerySpec{
			Sort: &domain.SortSpec{Field: domain.SortByDistance, Direction: domain.SortAsc},
		})
		assert.Equal(t, []string{"v1", "v2", "v3"}, ids(got))
	})
}

func TestViewUseCase_CurrentView(t *testing.T) {
	store := &MockVenueStore{}
	catalog := newLoadedCatalog(t, store, sampleVenues())
	location := usecase.NewLocationUseCase(nil, time.Minute, zap.NewNop())
	view := usecase.NewViewUseCase(catalog, location, zap.NewNop())

	got := view.CurrentView(domain.QuerySpec{Filters: domain.Filters{MinRating: 4}})
	assert.Len(t, got, 2)
}
