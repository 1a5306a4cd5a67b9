// Package docs Local News API.
//
// API для поиска локальных новостей по геокоординатам. Принимает широту,
// долготу и радиус поиска, определяет место через обратное геокодирование
// (Nominatim) и запрашивает свежие локальные новости у модели Anthropic
// с включенным web search.
//
// Основные возможности:
// - Поиск локальных новостей по координатам и радиусу
// - Ограничение глубины поиска по времени (24h, 48h, 7d)
// - Цитаты источников для каждой статьи
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
