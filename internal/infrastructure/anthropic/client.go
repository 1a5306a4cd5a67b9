package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/vinoth12940/LocalNews-AI/internal/config"
	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	api            sdk.Client
	model          string
	maxTokens      int64
	maxSearchUses  int64
	allowedDomains []string
	logger         *zap.Logger
}

// NewClient создает новый клиент поиска новостей поверх Anthropic Messages API
// с инструментом web search. Дополнительные option.RequestOption используются
// в тестах для подмены базового URL.
func NewClient(cfg *config.AnthropicConfig, logger *zap.Logger, opts ...option.RequestOption) repository.NewsRepository {
	requestOpts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second),
	}, opts...)

	return &client{
		api:            sdk.NewClient(requestOpts...),
		model:          cfg.Model,
		maxTokens:      int64(cfg.MaxTokens),
		maxSearchUses:  int64(cfg.MaxSearchUses),
		allowedDomains: cfg.AllowedDomains,
		logger:         logger,
	}
}

// Model возвращает идентификатор используемой модели
func (c *client) Model() string {
	return c.model
}

// SearchLocalNews выполняет поиск локальных новостей: один вызов модели
// с web search и преобразование ответа в статьи
func (c *client) SearchLocalNews(ctx context.Context, query domain.NewsQuery) ([]domain.NewsArticle, error) {
	prompt := buildPrompt(query)

	c.logger.Info("Searching for local news",
		zap.String("city", query.Location.City),
		zap.String("country", query.Location.Country),
		zap.Float64("radius_km", query.RadiusKm),
		zap.Int("days", query.Days()))

	webSearch := sdk.WebSearchTool20250305Param{
		MaxUses:        sdk.Int(c.maxSearchUses),
		AllowedDomains: c.allowedDomains,
		UserLocation:   c.userLocation(query.Location),
	}

	resp, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
		Tools: []sdk.ToolUnionParam{
			{OfWebSearchTool20250305: &webSearch},
		},
	})
	if err != nil {
		c.logger.Error("Anthropic API call failed", zap.Error(err))
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	// Блоки ответа разбираются через их сырой JSON: это union-типы,
	// а нам нужны только text-блоки с цитатами и результаты web search
	blocks := make([]contentBlock, 0, len(resp.Content))
	for _, b := range resp.Content {
		var cb contentBlock
		if err := json.Unmarshal([]byte(b.RawJSON()), &cb); err != nil {
			c.logger.Warn("Failed to decode content block", zap.Error(err))
			continue
		}
		blocks = append(blocks, cb)
	}

	articles := reshapeArticles(blocks, query.Location)

	c.logger.Info("Extracted news articles from model response",
		zap.Int("blocks", len(blocks)),
		zap.Int("articles", len(articles)))

	return articles, nil
}

func (c *client) userLocation(loc domain.LocationInfo) sdk.WebSearchTool20250305UserLocationParam {
	userLoc := sdk.WebSearchTool20250305UserLocationParam{}
	if loc.City != "" {
		userLoc.City = sdk.String(loc.City)
	}
	if loc.Region != "" {
		userLoc.Region = sdk.String(loc.Region)
	}
	if loc.CountryCode != "" {
		userLoc.Country = sdk.String(loc.CountryCode)
	}
	if loc.Timezone != "" {
		userLoc.Timezone = sdk.String(loc.Timezone)
	}
	return userLoc
}

func buildPrompt(query domain.NewsQuery) string {
	return fmt.Sprintf(
		"Find recent local news from %s, %s, %s within the last %d days in a %gkm radius. "+
			"Focus on important local events, government updates, and community developments.",
		query.Location.City,
		query.Location.Region,
		query.Location.Country,
		query.Days(),
		query.RadiusKm,
	)
}
