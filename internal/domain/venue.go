package domain

import (
	"strings"
	"time"
)

// Категории заведений (закрытый список)
const (
	CategoryDinner    = "dinner"
	CategoryCocktail  = "cocktail"
	CategoryBar       = "bar"
	CategoryAperitivo = "aperitivo"
	CategoryClub      = "club"
	CategoryOther     = "other"
)

// Categories - все допустимые категории в порядке отображения
var Categories = []string{
	CategoryDinner,
	CategoryCocktail,
	CategoryBar,
	CategoryAperitivo,
	CategoryClub,
	CategoryOther,
}

// Cuisines - рекомендуемый список кухонь; поле cuisine остаётся свободным текстом
var Cuisines = []string{
	"italian",
	"asian",
	"mediterranean",
	"french",
	"american",
	"mexican",
	"indian",
	"fusion",
	"other",
}

// Границы числовых полей записи
const (
	RatingMin = 0
	RatingMax = 5

	PriceMin     = 1
	PriceMax     = 5
	PriceDefault = 3
)

// Venue представляет заведение каталога
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Category  string    `json:"category"`
	Cuisine   string    `json:"cuisine"`
	Zone      string    `json:"zone"`
	Address   string    `json:"address"`
	Tags      []string  `json:"tags"`
	Comments  string    `json:"comments"`
	Rating    int       `json:"rating"`
	Price     int       `json:"price"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	DateAdded time.Time `json:"dateAdded"`
}

// VenueKey - ключ дедупликации: точное совпадение пары (name, city)
type VenueKey struct {
	Name string
	City string
}

// Key возвращает ключ дедупликации заведения
func (v Venue) Key() VenueKey {
	return VenueKey{Name: v.Name, City: v.City}
}

// HasCoordinates сообщает, заданы ли обе координаты
func (v Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// IsValidCategory проверяет принадлежность категории закрытому списку
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RepairVenue приводит запись к актуальной схеме хранения.
// Правило миграции: price вне [1,5] заменяется значением по умолчанию,
// nil-теги становятся пустым множеством. Повторное применение ничего не меняет.
func RepairVenue(v Venue) Venue {
	if v.Price < PriceMin || v.Price > PriceMax {
		v.Price = PriceDefault
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return v
}

// NormalizeTags убирает пустые строки и дубликаты, сохраняя порядок ввода
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
