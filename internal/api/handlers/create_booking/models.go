package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	createBooking "github.com/m04kA/SMC-CharterService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	YachtID       int64   `json:"yachtId"`
	BookingDate   string  `json:"bookingDate"` // "2026-06-10"
	StartTime     string  `json:"startTime"`   // "10:00"
	CharterHours  int     `json:"charterHours"`
	Guests        int     `json:"guests"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	YachtID       int64   `json:"yachtId"`
	YachtName     string  `json:"yachtName"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	CharterHours  int     `json:"charterHours"`
	Guests        int     `json:"guests"`
	Status        string  `json:"status"`
	PriceCents    int64   `json:"priceCents"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время отправления интерпретируются в UTC
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startAt, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, r.BookingDate+" "+r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		YachtID:       r.YachtID,
		StartAt:       startAt,
		CharterHours:  r.CharterHours,
		Guests:        r.Guests,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		YachtID:       resp.YachtID,
		YachtName:     resp.YachtName,
		BookingDate:   resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format(domain.TimeFormat),
		EndTime:       resp.EndAt.Format(domain.TimeFormat),
		CharterHours:  resp.CharterHours,
		Guests:        resp.Guests,
		Status:        resp.Status,
		PriceCents:    resp.PriceCents,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
