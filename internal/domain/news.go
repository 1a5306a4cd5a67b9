package domain

import "time"

// Relevance scores по происхождению статьи: процитированные моделью результаты,
// сырые результаты поиска без цитат и заглушка при пустом ответе.
const (
	RelevanceCited       = 0.85
	RelevanceRaw         = 0.7
	RelevancePlaceholder = 0.1
)

// Citation - цитата из источника, на который ссылается статья
type Citation struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	CitedText string `json:"cited_text"`
}

// NewsArticle - новостная статья, собранная из ответа модели
type NewsArticle struct {
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Source         string       `json:"source"`
	URL            string       `json:"url"`
	PublishedDate  *time.Time   `json:"published_date,omitempty"`
	Location       LocationInfo `json:"location"`
	RelevanceScore float64      `json:"relevance_score"`
	Citations      []Citation   `json:"citations"`
}

// NewsQuery - параметры поиска локальных новостей
type NewsQuery struct {
	Location   LocationInfo
	RadiusKm   float64
	MaxResults int
	TimeRange  string
}

// Days возвращает глубину поиска в днях для заданного time_range
func (q NewsQuery) Days() int {
	switch q.TimeRange {
	case "48h":
		return 2
	case "7d":
		return 7
	default:
		return 1
	}
}
