package list_yachts

import (
	"net/url"

	"github.com/m04kA/SMC-CharterService/internal/catalog"
	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// Settings параметры пагинации из конфигурации
type Settings struct {
	ItemsPerPage int
	MaxPerPage   int
}

// Request модель запроса на получение страницы каталога
type Request struct {
	Query        url.Values // Параметры фильтров из URL
	Page         int        // Номер страницы, 0 - первая
	ItemsPerPage int        // 0 - значение из конфигурации
}

// Response модель ответа со страницей каталога
type Response struct {
	Yachts  []domain.Yacht      // Яхты текущей страницы
	Filters catalog.FilterState // Разобранные фильтры
	Window  catalog.Window      // Пагинация
	Query   string              // Каноничная строка запроса для URL
}
