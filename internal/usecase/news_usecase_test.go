package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
	"github.com/vinoth12940/LocalNews-AI/internal/pkg/errors"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase"
	"github.com/vinoth12940/LocalNews-AI/internal/usecase/dto"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationInfo), args.Error(1)
}

// MockNewsRepository is a mock of NewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) SearchLocalNews(ctx context.Context, query domain.NewsQuery) ([]domain.NewsArticle, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) Model() string {
	args := m.Called()
	return args.String(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetLocation(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationInfo), args.Error(1)
}

func (m *MockCacheRepository) SetLocation(ctx context.Context, lat, lon float64, info *domain.LocationInfo, ttl time.Duration) error {
	args := m.Called(ctx, lat, lon, info, ttl)
	return args.Error(0)
}

var testLocation = domain.LocationInfo{
	Type:        "approximate",
	City:        "Barcelona",
	Region:      "Catalonia",
	CountryCode: "ES",
	Country:     "Spain",
	Timezone:    "UTC",
	RawAddress:  "Barcelona, Catalonia, Spain",
}

func testArticles(n int) []domain.NewsArticle {
	articles := make([]domain.NewsArticle, n)
	for i := range articles {
		articles[i] = domain.NewsArticle{
			Title:          fmt.Sprintf("Article %d", i),
			Content:        "content",
			Source:         "example.com",
			URL:            fmt.Sprintf("https://example.com/%d", i),
			Location:       testLocation,
			RelevanceScore: domain.RelevanceCited,
			Citations:      []domain.Citation{},
		}
	}
	return articles
}

func newUseCase(geocoder *MockGeocoderRepository, news *MockNewsRepository, cache *MockCacheRepository) *usecase.NewsUseCase {
	return usecase.NewNewsUseCase(geocoder, news, cache, zap.NewNop(), time.Hour, 5*time.Minute)
}

func TestNewsUseCase_SearchLocalNews(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("GetLocation", ctx, 41.3851, 2.1734).Return(nil, nil)
		geocoder.On("ReverseGeocode", ctx, 41.3851, 2.1734).Return(&testLocation, nil)
		cache.On("SetLocation", ctx, 41.3851, 2.1734, &testLocation, time.Hour).Return(nil)
		news.On("SearchLocalNews", ctx, mock.MatchedBy(func(q domain.NewsQuery) bool {
			return q.Location.City == "Barcelona" && q.RadiusKm == 10 && q.TimeRange == "24h" && q.MaxResults == 5
		})).Return(testArticles(3), nil)
		news.On("Model").Return("claude-3-5-sonnet-latest")
		cache.On("Set", ctx, mock.Anything, mock.Anything, 5*time.Minute).Return(nil)

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  41.3851,
			Longitude: 2.1734,
			Radius:    10,
		})
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Len(t, resp.Articles, 3)
		assert.Equal(t, 3, resp.Metadata.TotalResults)
		assert.Equal(t, "10km", resp.Metadata.SearchRadius)
		assert.Equal(t, "24h", resp.Metadata.TimeRange)
		assert.Equal(t, testLocation, resp.Metadata.Location)
		assert.NotEmpty(t, resp.SearchInfo.SearchID)
		assert.Equal(t, "claude-3-5-sonnet-latest", resp.SearchInfo.ModelUsed)
		assert.Equal(t, 41.3851, resp.SearchInfo.Coordinates["latitude"])
		assert.InDelta(t, float64(time.Now().Unix()), resp.SearchInfo.Timestamp, 5)

		geocoder.AssertExpectations(t)
		news.AssertExpectations(t)
	})

	t.Run("truncates to max_results", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("GetLocation", ctx, mock.Anything, mock.Anything).Return(&testLocation, nil)
		news.On("SearchLocalNews", ctx, mock.Anything).Return(testArticles(8), nil)
		news.On("Model").Return("claude-3-5-sonnet-latest")
		cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:   41.3851,
			Longitude:  2.1734,
			Radius:     10,
			MaxResults: 2,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Articles, 2)
		assert.Equal(t, 2, resp.Metadata.TotalResults)
		// Геокодер не вызывался - место пришло из кеша
		geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns cached response", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cached := dto.NewsResponse{
			Articles: testArticles(1),
			Metadata: dto.SearchMetadata{TotalResults: 1, SearchRadius: "10km", TimeRange: "24h", Location: testLocation},
			SearchInfo: dto.SearchInfo{
				SearchID:  "cached-id",
				ModelUsed: "claude-3-5-sonnet-latest",
			},
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		cache.On("Get", ctx, mock.Anything).Return(data, nil)

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  41.3851,
			Longitude: 2.1734,
			Radius:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, "cached-id", resp.SearchInfo.SearchID)
		news.AssertNotCalled(t, "SearchLocalNews", mock.Anything, mock.Anything)
		geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := newUseCase(&MockGeocoderRepository{}, &MockNewsRepository{}, &MockCacheRepository{})

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  95,
			Longitude: 2.1734,
			Radius:    10,
		})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})

	t.Run("invalid radius", func(t *testing.T) {
		uc := newUseCase(&MockGeocoderRepository{}, &MockNewsRepository{}, &MockCacheRepository{})

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  41.3851,
			Longitude: 2.1734,
			Radius:    150,
		})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidRadius, err)
	})

	t.Run("location not found", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("GetLocation", ctx, mock.Anything, mock.Anything).Return(nil, nil)
		geocoder.On("ReverseGeocode", ctx, mock.Anything, mock.Anything).Return(nil, errors.ErrLocationNotFound)

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  0.0,
			Longitude: -160.0,
			Radius:    10,
		})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrLocationNotFound, err)
		news.AssertNotCalled(t, "SearchLocalNews", mock.Anything, mock.Anything)
	})

	t.Run("news service failure", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("GetLocation", ctx, mock.Anything, mock.Anything).Return(&testLocation, nil)
		news.On("SearchLocalNews", ctx, mock.Anything).Return(nil, fmt.Errorf("anthropic API error: overloaded"))

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  41.3851,
			Longitude: 2.1734,
			Radius:    10,
		})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrNewsServiceError, err)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		news := &MockNewsRepository{}
		cache := &MockCacheRepository{}
		uc := newUseCase(geocoder, news, cache)

		cacheErr := fmt.Errorf("cache get error: connection refused")
		cache.On("Get", ctx, mock.Anything).Return(nil, cacheErr)
		cache.On("GetLocation", ctx, mock.Anything, mock.Anything).Return(nil, cacheErr)
		geocoder.On("ReverseGeocode", ctx, mock.Anything, mock.Anything).Return(&testLocation, nil)
		cache.On("SetLocation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cacheErr)
		news.On("SearchLocalNews", ctx, mock.Anything).Return(testArticles(1), nil)
		news.On("Model").Return("claude-3-5-sonnet-latest")
		cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(cacheErr)

		resp, err := uc.SearchLocalNews(ctx, dto.NewsSearchRequest{
			Latitude:  41.3851,
			Longitude: 2.1734,
			Radius:    10,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Articles, 1)
	})
}
