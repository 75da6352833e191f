package list_yachts

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-CharterService/internal/catalog"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
	listYachts "github.com/m04kA/SMC-CharterService/internal/usecase/list_yachts"
)

// ListYachtsResponse HTTP response model
type ListYachtsResponse struct {
	Yachts     []models.YachtResponse `json:"yachts"`
	Filters    FiltersResponse        `json:"filters"`
	Pagination PaginationResponse     `json:"pagination"`
	Query      string                 `json:"query"` // Каноничная строка запроса без "?"
}

// FiltersResponse разобранные фильтры, "all" - фильтр не задан
type FiltersResponse struct {
	Location   string   `json:"location"`
	Duration   string   `json:"duration"`
	Length     string   `json:"length"`
	Budget     string   `json:"budget"`
	Passengers string   `json:"passengers"`
	Amenities  []string `json:"amenities"`
}

// PaginationResponse модель отображения пагинации
type PaginationResponse struct {
	PageNumbers  []catalog.PageEntry `json:"pageNumbers"` // Номера страниц и "…"
	CurrentPage  int                 `json:"currentPage"`
	ItemsPerPage int                 `json:"itemsPerPage"`
	TotalItems   int                 `json:"totalItems"`
	TotalPages   int                 `json:"totalPages"`
	HasPrev      bool                `json:"hasPrev"`
	HasNext      bool                `json:"hasNext"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Нечисловой page трактуется как первая страница
func ToUseCaseRequest(query url.Values) (*listYachts.Request, error) {
	req := &listYachts.Request{Query: query}

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			req.Page = page
		}
	}

	if raw := query.Get("perPage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.ItemsPerPage = perPage
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listYachts.Response) *ListYachtsResponse {
	f := resp.Filters.Normalize()
	amenities := f.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	w := resp.Window
	return &ListYachtsResponse{
		Yachts: models.FromDomainYachtList(resp.Yachts),
		Filters: FiltersResponse{
			Location:   orAll(f.Location),
			Duration:   orAll(string(f.Duration)),
			Length:     orAll(string(f.Length)),
			Budget:     orAll(string(f.Budget)),
			Passengers: orAll(string(f.Passengers)),
			Amenities:  amenities,
		},
		Pagination: PaginationResponse{
			PageNumbers:  w.Pages,
			CurrentPage:  w.CurrentPage,
			ItemsPerPage: w.ItemsPerPage,
			TotalItems:   w.TotalItems,
			TotalPages:   w.TotalPages,
			HasPrev:      w.HasPrev(),
			HasNext:      w.HasNext(),
		},
		Query: resp.Query,
	}
}

func orAll(v string) string {
	if v == "" {
		return catalog.All
	}
	return v
}
