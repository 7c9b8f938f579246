package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	apperrors "github.com/nightspots-catalog/internal/pkg/errors"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// ImportUseCase - граница пакетного импорта: разбор вставленного или
// загруженного текста как JSON-массива заведений
type ImportUseCase struct {
	catalog *CatalogUseCase
	logger  *zap.Logger
}

// NewImportUseCase - создание нового ImportUseCase
func NewImportUseCase(catalog *CatalogUseCase, logger *zap.Logger) *ImportUseCase {
	return &ImportUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

type importItem struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Category  string   `json:"category"`
	Cuisine   string   `json:"cuisine"`
	Zone      string   `json:"zone"`
	Address   string   `json:"address"`
	Tags      []string `json:"tags"`
	Comments  string   `json:"comments"`
	Rating    int      `json:"rating"`
	Price     int      `json:"price"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ImportJSON разбирает и валидирует весь пакет до какого-либо изменения
// коллекции: любой невалидный элемент отклоняет импорт целиком.
// Принятые кандидаты уходят в BulkAdd одной пачкой.
func (uc *ImportUseCase) ImportJSON(ctx context.Context, raw []byte) (*dto.ImportResult, error) {
	var items []importItem
	if err := json.Unmarshal(raw, &items); err != nil {
		uc.logger.Warn("Import payload rejected", zap.Error(err))
		return nil, apperrors.ErrImportParse.WithDetails(map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	inputs := make([]dto.VenueInput, 0, len(items))
	for i, item := range items {
		if item.Name == "" || item.City == "" || item.Category == "" {
			return nil, apperrors.ErrImportInvalidItem.WithDetails(map[string]interface{}{
				"index": i,
			})
		}
		if !domain.IsValidCategory(item.Category) {
			return nil, apperrors.ErrImportInvalidItem.WithDetails(map[string]interface{}{
				"index":    i,
				"category": item.Category,
			})
		}
		if item.Rating < domain.RatingMin || item.Rating > domain.RatingMax {
			return nil, apperrors.ErrImportInvalidItem.WithDetails(map[string]interface{}{
				"index":  i,
				"rating": item.Rating,
			})
		}

		// Отсутствующие поля замещаются значениями по умолчанию;
		// price вне диапазона добьёт newVenue
		inputs = append(inputs, dto.VenueInput{
			Name:      item.Name,
			City:      item.City,
			Category:  item.Category,
			Cuisine:   item.Cuisine,
			Zone:      item.Zone,
			Address:   item.Address,
			Tags:      item.Tags,
			Comments:  item.Comments,
			Rating:    item.Rating,
			Price:     item.Price,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
		})
	}

	added, skipped, err := uc.catalog.BulkAdd(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return &dto.ImportResult{
		Imported: len(added),
		Skipped:  skipped,
	}, nil
}
