package dto

import (
	"time"

	"github.com/nightspots-catalog/internal/domain"
)

// VenueInput - проверенные данные формы: полный набор полей заведения
// без id и dateAdded, которые назначает коллекция
type VenueInput struct {
	Name      string   `json:"name" validate:"required"`
	City      string   `json:"city" validate:"required"`
	Category  string   `json:"category" validate:"required,oneof=dinner cocktail bar aperitivo club other"`
	Cuisine   string   `json:"cuisine"`
	Zone      string   `json:"zone"`
	Address   string   `json:"address"`
	Tags      []string `json:"tags"`
	Comments  string   `json:"comments"`
	Rating    int      `json:"rating" validate:"gte=0,lte=5"`
	Price     int      `json:"price" validate:"omitempty,gte=1,lte=5"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// AddVenueResponse - исход добавления. Added=false означает молчаливый
// пропуск дубликата (name, city); это не ошибка.
type AddVenueResponse struct {
	Venue *domain.Venue `json:"venue,omitempty"`
	Added bool          `json:"added"`
}

// ImportResult - итог пакетного импорта
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// QueryRequest - параметры производного списка из query string
type QueryRequest struct {
	Search    string `json:"q"`
	Category  string `json:"category"`
	Cuisine   string `json:"cuisine"`
	Zone      string `json:"zone"`
	MinRating int    `json:"min_rating" validate:"gte=0,lte=5"`
	Sort      string `json:"sort" validate:"omitempty,oneof=name zone category cuisine tags rating price dateAdded distance"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// LocationDTO - текущая позиция и момент её получения
type LocationDTO struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	ObtainedAt time.Time `json:"obtained_at"`
}
