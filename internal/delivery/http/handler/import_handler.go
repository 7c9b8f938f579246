package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nightspots-catalog/internal/pkg/utils"
	"github.com/nightspots-catalog/internal/usecase"
)

// ImportHandler - обработчик пакетного импорта
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

// NewImportHandler - создание нового ImportHandler
func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// Import godoc
// @Summary Пакетный импорт заведений
// @Description Тело запроса - сырой JSON-массив заведений (вставленный или загруженный текст). Пакет принимается целиком или отклоняется целиком; дубликаты пропускаются молча.
// @Tags Import
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ImportResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	result, err := h.importUC.ImportJSON(c.Context(), c.Body())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
