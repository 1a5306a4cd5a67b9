package dto

import "github.com/vinoth12940/LocalNews-AI/internal/domain"

// NewsResponse - ответ на поиск локальных новостей
type NewsResponse struct {
	Articles   []domain.NewsArticle `json:"articles"`
	Metadata   SearchMetadata       `json:"metadata"`
	SearchInfo SearchInfo           `json:"search_info"`
}

// SearchMetadata - метаданные о результатах поиска
type SearchMetadata struct {
	TotalResults int                 `json:"total_results"`
	SearchRadius string              `json:"search_radius"`
	TimeRange    string              `json:"time_range"`
	Location     domain.LocationInfo `json:"location"`
}

// SearchInfo - информация о выполненном поиске
type SearchInfo struct {
	SearchID    string             `json:"search_id"`
	Timestamp   float64            `json:"timestamp"`
	Coordinates map[string]float64 `json:"coordinates"`
	ModelUsed   string             `json:"model_used"`
}
