package list_yachts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CharterService/internal/catalog"
)

// UseCase use case выдачи каталога яхт с фильтрами и пагинацией
type UseCase struct {
	source     YachtSource
	sourceName string
	settings   Settings
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
// sourceName используется как метка метрик ("postgres" или "dataset")
func NewUseCase(source YachtSource, sourceName string, settings Settings, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		source:     source,
		sourceName: sourceName,
		settings:   settings,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case: фильтры из URL -> конвейер фильтров -> страница
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	perPage := req.ItemsPerPage
	if perPage == 0 {
		perPage = uc.settings.ItemsPerPage
	}
	if perPage < 0 || (uc.settings.MaxPerPage > 0 && perPage > uc.settings.MaxPerPage) {
		uc.logger.Warn("ListYachts: invalid perPage=%d", req.ItemsPerPage)
		return nil, fmt.Errorf("%w: perPage must be in 1..%d", ErrInvalidInput, uc.settings.MaxPerPage)
	}

	filters := catalog.Decode(req.Query)

	yachts, err := uc.source.ListYachts(ctx)
	if err != nil {
		uc.metrics.ObserveCatalogError(uc.sourceName)
		uc.logger.Error("ListYachts: failed to load catalog from %s: %v", uc.sourceName, err)
		return nil, fmt.Errorf("%w: ListYachts - source error: %v", ErrInternal, err)
	}

	filtered := catalog.Filter(yachts, filters)
	window := catalog.Paginate(len(filtered), perPage, req.Page)

	active := filters.ActiveDimensions()
	dims := make([]string, len(active))
	for i, d := range active {
		dims[i] = string(d)
	}
	uc.metrics.ObserveCatalog(uc.sourceName, len(filtered), dims)

	uc.logger.Info("ListYachts: %d of %d yachts match %q, page %d/%d",
		len(filtered), len(yachts), filters.QueryString(), window.CurrentPage, window.TotalPages)

	return &Response{
		Yachts:  catalog.PageOf(filtered, window),
		Filters: filters,
		Window:  window,
		Query:   filters.QueryString(),
	}, nil
}
