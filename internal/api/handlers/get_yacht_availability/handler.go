package get_yacht_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CharterService/internal/usecase/get_yacht_availability"
)

const (
	msgInvalidYachtID = "некорректный ID яхты"
	msgInvalidParams  = "ожидаются параметры date (YYYY-MM-DD) и hours"
	msgYachtNotFound  = "яхта не найдена"
	msgTierNotOffered = "яхта не сдается на указанное количество часов"
	msgInvalidDate    = "некорректная дата"
	msgDateTooFar     = "дата слишком далеко в будущем"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{yachtId}/availability?date=YYYY-MM-DD&hours=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yachtID, err := handlers.ParseID(mux.Vars(r)["yachtId"])
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/availability - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(yachtID, query.Get("date"), query.Get("hours"))
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrYachtNotFound):
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, getAvailability.ErrTierNotOffered):
			handlers.RespondBadRequest(w, msgTierNotOffered)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /yachts/{id}/availability - Failed to get availability: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/{id}/availability - %d departures: yacht_id=%d", len(result.Slots), yachtID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
