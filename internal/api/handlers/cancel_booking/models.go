package cancel_booking

import (
	"strings"

	"github.com/m04kA/SMC-CharterService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Email              string  `json:"email"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// Пустая причина отмены не сохраняется
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	var reason *string
	if r.CancellationReason != nil {
		if trimmed := strings.TrimSpace(*r.CancellationReason); trimmed != "" {
			reason = &trimmed
		}
	}

	return &models.CancelBookingRequest{
		Email:              r.Email,
		CancellationReason: reason,
	}
}
