package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePublishedDate(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, ParsePublishedDate(""))
		assert.Nil(t, ParsePublishedDate("   "))
	})

	t.Run("rfc3339", func(t *testing.T) {
		result := ParsePublishedDate("2025-04-30T10:15:00Z")
		require.NotNil(t, result)
		assert.Equal(t, 2025, result.Year())
		assert.Equal(t, time.April, result.Month())
		assert.Equal(t, 30, result.Day())
	})

	t.Run("naive date treated as UTC", func(t *testing.T) {
		result := ParsePublishedDate("April 30, 2025")
		require.NotNil(t, result)
		assert.Equal(t, time.UTC, result.Location())
		assert.Equal(t, 30, result.Day())
	})

	t.Run("days ago", func(t *testing.T) {
		result := ParsePublishedDate("2 days ago")
		require.NotNil(t, result)
		expected := time.Now().UTC().Add(-48 * time.Hour)
		assert.WithinDuration(t, expected, *result, time.Minute)
	})

	t.Run("hours ago", func(t *testing.T) {
		result := ParsePublishedDate("5 hours ago")
		require.NotNil(t, result)
		expected := time.Now().UTC().Add(-5 * time.Hour)
		assert.WithinDuration(t, expected, *result, time.Minute)
	})

	t.Run("minutes ago", func(t *testing.T) {
		result := ParsePublishedDate("30 minutes ago")
		require.NotNil(t, result)
		expected := time.Now().UTC().Add(-30 * time.Minute)
		assert.WithinDuration(t, expected, *result, time.Minute)
	})

	t.Run("yesterday", func(t *testing.T) {
		result := ParsePublishedDate("Yesterday")
		require.NotNil(t, result)
		expected := time.Now().UTC().Add(-24 * time.Hour)
		assert.WithinDuration(t, expected, *result, time.Minute)
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, ParsePublishedDate("not a date at all ###"))
		assert.Nil(t, ParsePublishedDate("many days ago"))
	})
}

func TestExtractSource(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"with www", "https://www.reuters.com/world/some-article", "reuters.com"},
		{"without www", "https://apnews.com/article/abc", "apnews.com"},
		{"with port", "http://localhost:8080/news", "localhost:8080"},
		{"empty", "", "Unknown Source"},
		{"no host", "/relative/path", "Unknown Source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSource(tt.url))
		})
	}
}
