package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Параметры: yachtId, status, startDate, endDate, date, includeInactive (все опциональные)
// date - сокращение для startDate = endDate
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	if v := query.Get("yachtId"); v != "" {
		yachtID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || yachtID <= 0 {
			return nil, fmt.Errorf("invalid yachtId %q", v)
		}
		req.YachtID = &yachtID
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
