package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/domain"
	"github.com/nightspots-catalog/internal/pkg/errors"
	"github.com/nightspots-catalog/internal/pkg/utils"
	"github.com/nightspots-catalog/internal/pkg/validator"
	"github.com/nightspots-catalog/internal/usecase"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// VenueHandler - обработчик операций каталога
type VenueHandler struct {
	catalogUC *usecase.CatalogUseCase
	viewUC    *usecase.ViewUseCase
	logger    *zap.Logger
}

// NewVenueHandler - создание нового VenueHandler
func NewVenueHandler(catalogUC *usecase.CatalogUseCase, viewUC *usecase.ViewUseCase, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		catalogUC: catalogUC,
		viewUC:    viewUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Производный список заведений
// @Description Возвращает коллекцию после поиска, фильтров и сортировки. Сортировка по расстоянию использует последнюю известную позицию.
// @Tags Venues
// @Produce json
// @Param q query string false "Подстрока поиска по name, tags, zone, city"
// @Param category query string false "Фильтр по категории (точное совпадение)"
// @Param cuisine query string false "Фильтр по кухне (точное совпадение)"
// @Param zone query string false "Фильтр по зоне (подстрока)"
// @Param min_rating query int false "Минимальный рейтинг (1-5)"
// @Param sort query string false "Поле сортировки" Enums(name, zone, category, cuisine, tags, rating, price, dateAdded, distance)
// @Param direction query string false "Направление" Enums(asc, desc)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Venue}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues [get]
func (h *VenueHandler) List(c *fiber.Ctx) error {
	req := dto.QueryRequest{
		Search:    c.Query("q"),
		Category:  c.Query("category"),
		Cuisine:   c.Query("cuisine"),
		Zone:      c.Query("zone"),
		MinRating: c.QueryInt("min_rating", 0),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction", string(domain.SortAsc)),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spec := domain.QuerySpec{
		SearchText: req.Search,
		Filters: domain.Filters{
			Category:  req.Category,
			Cuisine:   req.Cuisine,
			Zone:      req.Zone,
			MinRating: req.MinRating,
		},
	}
	if req.Sort != "" {
		spec.Sort = &domain.SortSpec{
			Field:     domain.SortField(req.Sort),
			Direction: domain.SortDirection(req.Direction),
		}
	}

	venues := h.viewUC.CurrentView(spec)

	return utils.SendSuccess(c, venues, &utils.Meta{
		Total: len(venues),
	})
}

// Get godoc
// @Summary Заведение по id
// @Tags Venues
// @Produce json
// @Param id path string true "ID заведения"
// @Success 200 {object} utils.SuccessResponse{data=domain.Venue}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id} [get]
func (h *VenueHandler) Get(c *fiber.Ctx) error {
	venue, ok := h.catalogUC.Get(c.Params("id"))
	if !ok {
		return utils.SendError(c, errors.ErrVenueNotFound)
	}
	return utils.SendSuccess(c, venue, nil)
}

// Create godoc
// @Summary Добавление заведения
// @Description Дубликат по паре (name, city) - ожидаемый no-op: ответ added=false без ошибки.
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body dto.VenueInput true "Данные заведения"
// @Success 200 {object} utils.SuccessResponse{data=dto.AddVenueResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues [post]
func (h *VenueHandler) Create(c *fiber.Ctx) error {
	var req dto.VenueInput
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidVenue)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidVenue.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	venue, added, err := h.catalogUC.Add(c.Context(), req)
	if err != nil {
		return utils.SendError(c, errors.ErrStorage)
	}

	return utils.SendSuccess(c, dto.AddVenueResponse{
		Venue: venue,
		Added: added,
	}, nil)
}

// Update godoc
// @Summary Замена полей заведения
// @Description Заменяет все поля, кроме id и dateAdded. Неизвестный id оставляет коллекцию нетронутой.
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path string true "ID заведения"
// @Param request body dto.VenueInput true "Новые данные заведения"
// @Success 200 {object} utils.SuccessResponse{data=domain.Venue}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id} [put]
func (h *VenueHandler) Update(c *fiber.Ctx) error {
	var req dto.VenueInput
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidVenue)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidVenue.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	venue, updated, err := h.catalogUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, errors.ErrStorage)
	}
	if !updated {
		return utils.SendError(c, errors.ErrVenueNotFound)
	}

	return utils.SendSuccess(c, venue, nil)
}
