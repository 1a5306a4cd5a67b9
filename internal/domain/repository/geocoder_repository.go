package repository

import (
	"context"

	"github.com/vinoth12940/LocalNews-AI/internal/domain"
)

// GeocoderRepository определяет методы обратного геокодирования
type GeocoderRepository interface {
	// ReverseGeocode определяет описание места по координатам
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error)
}
