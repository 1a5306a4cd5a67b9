package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParsePublishedDate разбирает дату публикации из ответа поискового сервиса.
// Поддерживает относительные формы ("5 minutes ago", "2 days ago", "yesterday")
// и произвольные абсолютные форматы. Наивные даты считаются UTC.
// Возвращает nil, если строку разобрать не удалось.
func ParsePublishedDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	lower := strings.ToLower(value)

	if lower == "yesterday" {
		t := time.Now().UTC().Add(-24 * time.Hour)
		return &t
	}

	for suffix, unit := range map[string]time.Duration{
		"minutes ago": time.Minute,
		"minute ago":  time.Minute,
		"hours ago":   time.Hour,
		"hour ago":    time.Hour,
		"days ago":    24 * time.Hour,
		"day ago":     24 * time.Hour,
	} {
		if !strings.HasSuffix(lower, suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(lower, suffix)))
		if err != nil {
			return nil
		}
		t := time.Now().UTC().Add(-time.Duration(n) * unit)
		return &t
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return nil
	}
	parsed = parsed.UTC()
	return &parsed
}

// ExtractSource возвращает имя источника по URL статьи (хост без "www.").
func ExtractSource(rawURL string) string {
	if rawURL == "" {
		return "Unknown Source"
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "Unknown Source"
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
