package repository

import (
	"context"
	"time"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetLocation получает результат геокодирования из кеша
	GetLocation(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error)

	// SetLocation сохраняет результат геокодирования в кеше
	SetLocation(ctx context.Context, lat, lon float64, info *domain.LocationInfo, ttl time.Duration) error
}
