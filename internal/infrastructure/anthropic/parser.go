package anthropic

import (
	"encoding/json"
	"time"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/utils"
)

const maxContentLength = 500

// contentBlock - блок ответа Messages API в той части, которая нужна
// для сборки статей
type contentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Citations []citation      `json:"citations"`
	Content   json.RawMessage `json:"content"`
}

// citation - цитата внутри text-блока
type citation struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	CitedText string `json:"cited_text"`
}

// webSearchResult - сырой результат внутри блока web_search_tool_result
type webSearchResult struct {
	Type             string `json:"type"`
	URL              string `json:"url"`
	Title            string `json:"title"`
	EncryptedContent string `json:"encrypted_content"`
	PageAge          string `json:"page_age"`
}

// rawResult - данные сырого результата поиска, используемые для обогащения статей
type rawResult struct {
	title   string
	snippet string
	pageAge string
}

// reshapeArticles собирает статьи из блоков ответа модели.
// Приоритет: статьи из цитат text-блоков (обогащенные сырыми результатами),
// затем статьи из сырых результатов без цитат, затем заглушка.
func reshapeArticles(blocks []contentBlock, location domain.LocationInfo) []domain.NewsArticle {
	rawByURL := make(map[string]rawResult)
	rawOrder := make([]string, 0)

	for _, block := range blocks {
		if block.Type != "web_search_tool_result" || len(block.Content) == 0 {
			continue
		}
		// content бывает и объектом ошибки - такие блоки пропускаются
		var results []webSearchResult
		if err := json.Unmarshal(block.Content, &results); err != nil {
			continue
		}
		for _, r := range results {
			if r.Type != "web_search_result" || r.URL == "" {
				continue
			}
			if _, seen := rawByURL[r.URL]; !seen {
				rawOrder = append(rawOrder, r.URL)
			}
			rawByURL[r.URL] = rawResult{
				title:   r.Title,
				snippet: r.EncryptedContent,
				pageAge: r.PageAge,
			}
		}
	}

	var articles []domain.NewsArticle
	articleIdx := make(map[string]int)

	for _, block := range blocks {
		if block.Type != "text" {
			continue
		}
		for _, cite := range block.Citations {
			if cite.Type != "web_search_result_location" || cite.URL == "" {
				continue
			}

			if idx, ok := articleIdx[cite.URL]; ok {
				// Статья уже есть - добавляем цитату, если она новая
				appendCitation(&articles[idx], cite)
				continue
			}

			raw := rawByURL[cite.URL]
			title := cite.Title
			if title == "" {
				title = raw.title
			}
			if title == "" {
				title = "Untitled"
			}
			content := cite.CitedText
			if content == "" {
				content = raw.snippet
			}

			articles = append(articles, domain.NewsArticle{
				Title:          title,
				Content:        truncate(content),
				Source:         utils.ExtractSource(cite.URL),
				URL:            cite.URL,
				PublishedDate:  utils.ParsePublishedDate(raw.pageAge),
				Location:       location,
				RelevanceScore: domain.RelevanceCited,
				Citations: []domain.Citation{{
					URL:       cite.URL,
					Title:     cite.Title,
					CitedText: cite.CitedText,
				}},
			})
			articleIdx[cite.URL] = len(articles) - 1
		}
	}

	// Цитат не было, но поиск что-то вернул - собираем статьи из сырых результатов
	if len(articles) == 0 && len(rawOrder) > 0 {
		for _, u := range rawOrder {
			raw := rawByURL[u]
			title := raw.title
			if title == "" {
				title = "Untitled"
			}
			articles = append(articles, domain.NewsArticle{
				Title:          title,
				Content:        truncate(raw.snippet),
				Source:         utils.ExtractSource(u),
				URL:            u,
				PublishedDate:  utils.ParsePublishedDate(raw.pageAge),
				Location:       location,
				RelevanceScore: domain.RelevanceRaw,
				Citations:      []domain.Citation{},
			})
		}
	}

	if len(articles) == 0 {
		return []domain.NewsArticle{placeholderArticle("No news found for your criteria.", location)}
	}

	return articles
}

func appendCitation(article *domain.NewsArticle, cite citation) {
	for _, existing := range article.Citations {
		if existing.URL == cite.URL && existing.CitedText == cite.CitedText {
			return
		}
	}
	article.Citations = append(article.Citations, domain.Citation{
		URL:       cite.URL,
		Title:     cite.Title,
		CitedText: cite.CitedText,
	})
}

func placeholderArticle(message string, location domain.LocationInfo) domain.NewsArticle {
	now := time.Now().UTC()
	return domain.NewsArticle{
		Title:          "News Update",
		Content:        message,
		Source:         "System",
		URL:            "",
		PublishedDate:  &now,
		Location:       location,
		RelevanceScore: domain.RelevancePlaceholder,
		Citations:      []domain.Citation{},
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContentLength {
		return s
	}
	return string(runes[:maxContentLength]) + "..."
}
