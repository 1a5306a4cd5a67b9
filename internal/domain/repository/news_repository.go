package repository

import (
	"context"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
)

// NewsRepository определяет методы поиска локальных новостей через внешнюю модель
type NewsRepository interface {
	// SearchLocalNews выполняет поиск новостей по описанию места и параметрам запроса
	SearchLocalNews(ctx context.Context, query domain.NewsQuery) ([]domain.NewsArticle, error)

	// Model возвращает идентификатор используемой модели
	Model() string
}
