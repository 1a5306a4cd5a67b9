package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetLocation получает результат геокодирования из кеша
func (r *cacheRepository) GetLocation(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	data, err := r.Get(ctx, locationKey(lat, lon))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var info domain.LocationInfo
	if err := json.Unmarshal(data, &info); err != nil {
		r.logger.Error("Failed to unmarshal location from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal location: %w", err)
	}

	return &info, nil
}

// SetLocation сохраняет результат геокодирования в кеше
func (r *cacheRepository) SetLocation(ctx context.Context, lat, lon float64, info *domain.LocationInfo, ttl time.Duration) error {
	data, err := json.Marshal(info)
	if err != nil {
		r.logger.Error("Failed to marshal location", zap.Error(err))
		return fmt.Errorf("marshal location: %w", err)
	}

	return r.Set(ctx, locationKey(lat, lon), data, ttl)
}

// locationKey строит ключ кеша геокодирования. Координаты округляются
// до 4 знаков (~11 метров) - близкие точки попадают в одну ячейку
func locationKey(lat, lon float64) string {
	return fmt.Sprintf("geocode:%.4f:%.4f", lat, lon)
}
