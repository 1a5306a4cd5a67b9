package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/errors"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/utils"
	pkgvalidator "github.com/vinoth12940/LocalNews-AI/internal/pkg/validator"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase/dto"
	"go.uber.org/zap"
)

// NewsHandler - обработчик запросов поиска локальных новостей
type NewsHandler struct {
	newsUC *usecase.NewsUseCase
	logger *zap.Logger
}

// NewNewsHandler - создание нового NewsHandler
func NewNewsHandler(newsUC *usecase.NewsUseCase, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{
		newsUC: newsUC,
		logger: logger,
	}
}

// SearchNews godoc
// @Summary Поиск локальных новостей по координатам
// @Description Определяет место по координатам через обратное геокодирование и запрашивает свежие локальные новости у модели с web search. Ответ - статьи с цитатами источников.
// @Tags News
// @Accept json
// @Produce json
// @Param request body dto.NewsSearchRequest true "Координаты, радиус и параметры поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.NewsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/search-news [post]
func (h *NewsHandler) SearchNews(c *fiber.Ctx) error {
	var req dto.NewsSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	return h.search(c, req)
}

// SearchNewsGET godoc
// @Summary Поиск локальных новостей по координатам (GET)
// @Description GET-вариант поиска новостей: параметры передаются в query string
// @Tags News
// @Produce json
// @Param lat query number true "Широта (-90..90)"
// @Param lon query number true "Долгота (-180..180)"
// @Param radius query number true "Радиус поиска в километрах (0..100]"
// @Param max_results query int false "Максимум статей (1..20)" default(5)
// @Param time_range query string false "Глубина поиска (24h, 48h, 7d)" default(24h)
// @Success 200 {object} utils.SuccessResponse{data=dto.NewsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search-news [get]
func (h *NewsHandler) SearchNewsGET(c *fiber.Ctx) error {
	req := dto.NewsSearchRequest{
		Latitude:   c.QueryFloat("lat"),
		Longitude:  c.QueryFloat("lon"),
		Radius:     c.QueryFloat("radius"),
		MaxResults: c.QueryInt("max_results", 0),
		TimeRange:  c.Query("time_range"),
	}

	return h.search(c, req)
}

func (h *NewsHandler) search(c *fiber.Ctx, req dto.NewsSearchRequest) error {
	// Валидация
	if err := pkgvalidator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validationDetails(err)))
	}

	// Выполнение use case
	result, err := h.newsUC.SearchLocalNews(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Metadata.TotalResults,
	})
}

// validationDetails превращает ошибки валидатора в details для AppError
func validationDetails(err error) map[string]interface{} {
	details := make(map[string]interface{})

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrs {
		details[strings.ToLower(fieldErr.Field())] = "failed on '" + fieldErr.Tag() + "' rule"
	}
	return details
}
