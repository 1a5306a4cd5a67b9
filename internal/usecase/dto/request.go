package dto

// NewsSearchRequest - запрос на поиск локальных новостей по координатам.
// Широта и долгота без required: 0 - валидное значение для обеих.
type NewsSearchRequest struct {
	Latitude   float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `json:"longitude" validate:"min=-180,max=180"`
	Radius     float64 `json:"radius" validate:"required,gt=0,lte=100"`
	MaxResults int     `json:"max_results" validate:"omitempty,min=1,max=20"`
	TimeRange  string  `json:"time_range" validate:"omitempty,oneof=24h 48h 7d"`
}

// ApplyDefaults выставляет значения по умолчанию для необязательных полей
func (r *NewsSearchRequest) ApplyDefaults() {
	if r.MaxResults == 0 {
		r.MaxResults = 5
	}
	if r.TimeRange == "" {
		r.TimeRange = "24h"
	}
}
