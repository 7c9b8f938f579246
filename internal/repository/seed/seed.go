// Package seed содержит встроенный набор заведений по умолчанию.
// Хранилище возвращает его, когда долговременная запись отсутствует
// или не разбирается, и тут же записывает обратно.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/nightspots-catalog/internal/domain"
)

//go:embed seed_venues.json
var seedData []byte

// Venues возвращает свежую копию набора по умолчанию
func Venues() ([]domain.Venue, error) {
	var venues []domain.Venue
	if err := json.Unmarshal(seedData, &venues); err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed dataset: %w", err)
	}
	for i := range venues {
		venues[i] = domain.RepairVenue(venues[i])
	}
	return venues, nil
}
