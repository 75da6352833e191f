package list_yachts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	listYachts "github.com/m04kA/SMC-CharterService/internal/usecase/list_yachts"
)

const (
	msgInvalidPerPage = "некорректное количество яхт на странице"
)

type Handler struct {
	useCase ListYachtsUseCase
	logger  Logger
}

func NewHandler(useCase ListYachtsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts
// Query params: location, duration, length, budget, passengers, amenities (повторяется), page, perPage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /yachts - Invalid perPage: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPerPage)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listYachts.ErrInvalidInput):
			h.logger.Warn("GET /yachts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPerPage)

		default:
			h.logger.Error("GET /yachts - Failed to list yachts: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts - Catalog page served: page=%d/%d, total=%d, query=%q",
		result.Window.CurrentPage, result.Window.TotalPages, result.Window.TotalItems, result.Query)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
