package utils

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса поиска (0 - 100 км, не включая 0)
func ValidateRadius(radiusKm float64) bool {
	return radiusKm > 0 && radiusKm <= 100
}
