package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vinoth12940/LocalNews-AI/internal/config"
	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/domain/repository"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
	logger     *zap.Logger
}

// reverseResponse - ответ Nominatim /reverse (format=jsonv2)
type reverseResponse struct {
	Error       string `json:"error"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		County      string `json:"county"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// NewClient создает новый клиент для Nominatim API
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		language:  cfg.Language,
		logger:    logger,
	}
}

// ReverseGeocode определяет описание места по координатам
func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("format", "jsonv2")
	params.Set("accept-language", c.language)

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Nominatim reverse API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim требует осмысленный User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var reverse reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&reverse); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Nominatim отвечает 200 с полем error, если точка не геокодируется
	// (например, открытое море)
	if reverse.Error != "" || reverse.DisplayName == "" {
		c.logger.Warn("Nominatim could not geocode coordinates",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.String("error", reverse.Error))
		return nil, errors.ErrLocationNotFound
	}

	info := &domain.LocationInfo{
		Type:        "approximate",
		City:        firstNonEmpty(reverse.Address.City, reverse.Address.Town, reverse.Address.Village),
		Region:      firstNonEmpty(reverse.Address.State, reverse.Address.County),
		CountryCode: strings.ToUpper(reverse.Address.CountryCode),
		Country:     reverse.Address.Country,
		Timezone:    "UTC",
		RawAddress:  reverse.DisplayName,
	}

	c.logger.Debug("Nominatim reverse geocode successful",
		zap.String("city", info.City),
		zap.String("region", info.Region),
		zap.String("country", info.Country))

	return info, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
