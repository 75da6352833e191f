package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CharterService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время отправления, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotAvailable   = "яхта уже занята в выбранное время"
	msgYachtNotFound      = "яхта не найдена"
	msgTierNotOffered     = "яхта не сдается на указанное количество часов"
	msgTooManyGuests      = "количество гостей превышает вместимость яхты"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot    = "некорректное время отправления"
	msgTooLateToBook      = "слишком поздно для бронирования этого отправления"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse departure: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: yacht_id=%d, start=%s %s", req.YachtID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrYachtNotFound):
			h.logger.Warn("POST /bookings - Yacht not found: yacht_id=%d", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createBooking.ErrTierNotOffered):
			handlers.RespondBadRequest(w, msgTierNotOffered)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: yacht_id=%d, error=%v", req.YachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, yacht_id=%d",
		result.ID, result.Reference, result.YachtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
