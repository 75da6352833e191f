package get_yacht_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CharterService/internal/usecase/get_yacht_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date         string      `json:"date"`
	YachtID      int64       `json:"yachtId"`
	CharterHours int         `json:"charterHours"`
	PriceCents   int64       `json:"priceCents"`
	Departures   []Departure `json:"departures"`
}

// Departure модель отправления
type Departure struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	departures := make([]Departure, len(resp.Slots))
	for i, slot := range resp.Slots {
		departures[i] = Departure{
			StartTime: slot.StartAt.Format(domain.TimeFormat),
			EndTime:   slot.EndAt().Format(domain.TimeFormat),
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		YachtID:      resp.YachtID,
		CharterHours: resp.CharterHours,
		PriceCents:   resp.PriceCents,
		Departures:   departures,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(yachtID int64, dateStr, hoursStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		YachtID:      yachtID,
		Date:         date,
		CharterHours: hours,
	}, nil
}
