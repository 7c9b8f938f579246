package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/pkg/errors"
	"github.com/nightspots-catalog/internal/pkg/utils"
	"github.com/nightspots-catalog/internal/usecase"
	"github.com/nightspots-catalog/internal/usecase/dto"
)

// LocationHandler - обработчик запросов позиции
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Current godoc
// @Summary Последняя известная позиция
// @Tags Location
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationDTO}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location [get]
func (h *LocationHandler) Current(c *fiber.Ctx) error {
	loc := h.locationUC.CurrentLocationDTO()
	if loc == nil {
		return utils.SendError(c, errors.ErrLocationNotKnown)
	}
	return utils.SendSuccess(c, loc, nil)
}

// Refresh godoc
// @Summary Запрос текущей позиции
// @Description Однократный явный запрос к сервису геолокации. Сбой не трогает последнюю известную позицию.
// @Tags Location
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationDTO}
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/location/refresh [post]
func (h *LocationHandler) Refresh(c *fiber.Ctx) error {
	pos, err := h.locationUC.RequestCurrentLocation(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.LocationDTO{
		Lat: pos.Lat,
		Lon: pos.Lon,
	}, nil)
}
