package domain

// SortField - поле сортировки производного списка
type SortField string

const (
	SortByName      SortField = "name"
	SortByZone      SortField = "zone"
	SortByCategory  SortField = "category"
	SortByCuisine   SortField = "cuisine"
	SortByTags      SortField = "tags"
	SortByRating    SortField = "rating"
	SortByPrice     SortField = "price"
	SortByDateAdded SortField = "dateAdded"
	SortByDistance  SortField = "distance"
)

// SortDirection - направление сортировки
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec - выбранная пользователем сортировка
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// Toggle реализует контракт переключения сортировки в UI:
// повторный выбор того же поля меняет направление, новое поле начинает с asc.
func (s SortSpec) Toggle(field SortField) SortSpec {
	if s.Field == field {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return s
	}
	return SortSpec{Field: field, Direction: SortAsc}
}

// IsValidSortField проверяет имя поля сортировки
func IsValidSortField(f string) bool {
	switch SortField(f) {
	case SortByName, SortByZone, SortByCategory, SortByCuisine, SortByTags,
		SortByRating, SortByPrice, SortByDateAdded, SortByDistance:
		return true
	}
	return false
}

// Coordinate - географическая точка в градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Filters - независимые фильтры производного списка (AND-семантика)
type Filters struct {
	Category  string `json:"category"`
	Cuisine   string `json:"cuisine"`
	Zone      string `json:"zone"`
	MinRating int    `json:"minRating"`
}

// QuerySpec - эфемерная спецификация производного списка.
// Nil Sort означает сортировку по умолчанию: рейтинг по убыванию,
// при равенстве - имя по возрастанию.
type QuerySpec struct {
	SearchText string
	Filters    Filters
	Sort       *SortSpec
	Location   *Coordinate
}
