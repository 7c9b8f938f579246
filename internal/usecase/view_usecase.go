package usecase

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/pkg/utils"
)

// ViewUseCase - конвейер производного списка: поиск, фильтры,
// устойчивая сортировка поверх снимка коллекции
type ViewUseCase struct {
	catalog  *CatalogUseCase
	location *LocationUseCase
	logger   *zap.Logger
}

// NewViewUseCase - создание нового ViewUseCase
func NewViewUseCase(catalog *CatalogUseCase, location *LocationUseCase, logger *zap.Logger) *ViewUseCase {
	return &ViewUseCase{
		catalog:  catalog,
		location: location,
		logger:   logger,
	}
}

// CurrentView строит список по текущему состоянию: снимок коллекции
// плюс последняя известная позиция для сортировки по расстоянию
func (uc *ViewUseCase) CurrentView(spec domain.QuerySpec) []domain.Venue {
	if spec.Location == nil {
		spec.Location = uc.location.CurrentLocation()
	}
	return DeriveView(uc.catalog.Venues(), spec)
}

// DeriveView - чистая функция конвейера. Порядок шагов фиксирован:
// текстовый поиск, затем независимые фильтры (AND), затем сортировка.
// Nil Sort означает вид по умолчанию: рейтинг по убыванию, при
// равенстве имя по возрастанию.
func DeriveView(venues []domain.Venue, spec domain.QuerySpec) []domain.Venue {
	result := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if !matchesSearch(v, spec.SearchText) {
			continue
		}
		if !matchesFilters(v, spec.Filters) {
			continue
		}
		result = append(result, v)
	}

	sortVenues(result, spec)
	return result
}

func matchesSearch(v domain.Venue, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Zone), q) ||
		strings.Contains(strings.ToLower(v.City), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesFilters(v domain.Venue, f domain.Filters) bool {
	if f.Category != "" && v.Category != f.Category {
		return false
	}
	if f.Cuisine != "" && v.Cuisine != f.Cuisine {
		return false
	}
	if f.Zone != "" && !strings.Contains(strings.ToLower(v.Zone), strings.ToLower(f.Zone)) {
		return false
	}
	if f.MinRating > 0 && v.Rating < f.MinRating {
		return false
	}
	return true
}

func sortVenues(venues []domain.Venue, spec domain.QuerySpec) {
	// Collator не потокобезопасен, поэтому создаётся на каждый проход
	collator := collate.New(language.Und, collate.Loose)

	if spec.Sort == nil {
		// Вид по умолчанию: рейтинг по убыванию, далее имя
		sort.SliceStable(venues, func(i, j int) bool {
			if venues[i].Rating != venues[j].Rating {
				return venues[i].Rating > venues[j].Rating
			}
			return collator.CompareString(venues[i].Name, venues[j].Name) < 0
		})
		return
	}

	// Без известной позиции сортировка по расстоянию - no-op:
	// относительный порядок после фильтров сохраняется
	if spec.Sort.Field == domain.SortByDistance && spec.Location == nil {
		return
	}

	cmp := comparator(spec.Sort.Field, spec.Location, collator)
	desc := spec.Sort.Direction == domain.SortDesc

	sort.SliceStable(venues, func(i, j int) bool {
		c := cmp(venues[i], venues[j])
		if desc {
			c = -c
		}
		return c < 0
	})
}

func comparator(field domain.SortField, loc *domain.Coordinate, collator *collate.Collator) func(a, b domain.Venue) int {
	switch field {
	case domain.SortByName:
		return func(a, b domain.Venue) int { return collator.CompareString(a.Name, b.Name) }
	case domain.SortByZone:
		return func(a, b domain.Venue) int { return collator.CompareString(a.Zone, b.Zone) }
	case domain.SortByCategory:
		return func(a, b domain.Venue) int { return collator.CompareString(a.Category, b.Category) }
	case domain.SortByCuisine:
		return func(a, b domain.Venue) int { return collator.CompareString(a.Cuisine, b.Cuisine) }
	case domain.SortByTags:
		return func(a, b domain.Venue) int {
			return collator.CompareString(strings.Join(a.Tags, ","), strings.Join(b.Tags, ","))
		}
	case domain.SortByRating:
		return func(a, b domain.Venue) int { return a.Rating - b.Rating }
	case domain.SortByPrice:
		return func(a, b domain.Venue) int { return a.Price - b.Price }
	case domain.SortByDateAdded:
		return func(a, b domain.Venue) int { return a.DateAdded.Compare(b.DateAdded) }
	case domain.SortByDistance:
		return func(a, b domain.Venue) int {
			return compareFloat(distanceFrom(a, loc), distanceFrom(b, loc))
		}
	default:
		return func(a, b domain.Venue) int { return 0 }
	}
}

// distanceFrom возвращает расстояние до позиции; заведения без координат
// бесконечно далеко и при возрастающем порядке оказываются последними
func distanceFrom(v domain.Venue, loc *domain.Coordinate) float64 {
	if !v.HasCoordinates() {
		return math.Inf(1)
	}
	return utils.HaversineDistance(loc.Lat, loc.Lon, *v.Latitude, *v.Longitude)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
