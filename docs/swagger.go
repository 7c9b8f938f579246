// Package docs NightSpots Catalog API.
//
// Персональный каталог заведений: рестораны, бары, коктейльные и
// ночные места. Коллекция живёт в локальном хранилище процесса и
// отдаётся как производный список после поиска, фильтров и сортировки.
//
// Основные возможности:
// - Добавление, правка и пакетный импорт заведений
// - Поиск по названию, тегам, зоне и городу
// - Фильтры по категории, кухне, зоне и минимальному рейтингу
// - Сортировка, включая расстояние от текущей позиции
//
//	Schemes: http
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
