package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/domain/repository"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/errors"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/utils"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase/dto"
)

// NewsUseCase - use case поиска локальных новостей:
// валидация -> геокодирование -> запрос к модели -> сборка ответа
type NewsUseCase struct {
	geocoderRepo repository.GeocoderRepository
	newsRepo     repository.NewsRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	geocodeTTL   time.Duration
	searchTTL    time.Duration
}

// NewNewsUseCase - создание нового NewsUseCase
func NewNewsUseCase(
	geocoderRepo repository.GeocoderRepository,
	newsRepo repository.NewsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	geocodeTTL time.Duration,
	searchTTL time.Duration,
) *NewsUseCase {
	return &NewsUseCase{
		geocoderRepo: geocoderRepo,
		newsRepo:     newsRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		geocodeTTL:   geocodeTTL,
		searchTTL:    searchTTL,
	}
}

// SearchLocalNews - поиск локальных новостей по координатам и радиусу
func (uc *NewsUseCase) SearchLocalNews(ctx context.Context, req dto.NewsSearchRequest) (*dto.NewsResponse, error) {
	req.ApplyDefaults()

	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidRadius
	}

	cacheKey := searchKey(req)
	if cached := uc.cachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	location, err := uc.resolveLocation(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	articles, err := uc.newsRepo.SearchLocalNews(ctx, domain.NewsQuery{
		Location:   *location,
		RadiusKm:   req.Radius,
		MaxResults: req.MaxResults,
		TimeRange:  req.TimeRange,
	})
	if err != nil {
		uc.logger.Error("News search failed", zap.Error(err))
		return nil, errors.ErrNewsServiceError
	}

	if len(articles) > req.MaxResults {
		articles = articles[:req.MaxResults]
	}

	resp := &dto.NewsResponse{
		Articles: articles,
		Metadata: dto.SearchMetadata{
			TotalResults: len(articles),
			SearchRadius: fmt.Sprintf("%gkm", req.Radius),
			TimeRange:    req.TimeRange,
			Location:     *location,
		},
		SearchInfo: dto.SearchInfo{
			SearchID:  uuid.NewString(),
			Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
			Coordinates: map[string]float64{
				"latitude":  req.Latitude,
				"longitude": req.Longitude,
			},
			ModelUsed: uc.newsRepo.Model(),
		},
	}

	uc.storeResponse(ctx, cacheKey, resp)

	uc.logger.Info("Local news search completed",
		zap.String("search_id", resp.SearchInfo.SearchID),
		zap.String("city", location.City),
		zap.Int("articles", len(articles)))

	return resp, nil
}

// resolveLocation - геокодирование с кешем: сначала кеш, потом Nominatim
func (uc *NewsUseCase) resolveLocation(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	cached, err := uc.cacheRepo.GetLocation(ctx, lat, lon)
	if err != nil {
		// Ошибка кеша не фатальна - идем в геокодер
		uc.logger.Warn("Geocode cache lookup failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	location, err := uc.geocoderRepo.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		uc.logger.Error("Reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, errors.ErrGeocodingError
	}

	if err := uc.cacheRepo.SetLocation(ctx, lat, lon, location, uc.geocodeTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
	}

	return location, nil
}

func (uc *NewsUseCase) cachedResponse(ctx context.Context, key string) *dto.NewsResponse {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Search cache lookup failed", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var resp dto.NewsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached search response", zap.Error(err))
		return nil
	}

	return &resp
}

func (uc *NewsUseCase) storeResponse(ctx context.Context, key string, resp *dto.NewsResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal search response for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.searchTTL); err != nil {
		uc.logger.Warn("Failed to cache search response", zap.Error(err))
	}
}

func searchKey(req dto.NewsSearchRequest) string {
	return fmt.Sprintf("news:%.4f:%.4f:%g:%d:%s",
		req.Latitude, req.Longitude, req.Radius, req.MaxResults, req.TimeRange)
}
