package models

import (
	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// PriceTier тариф яхты
type PriceTier struct {
	CharterHours int   `json:"charterHours"`
	RetailCents  int64 `json:"retailCents"`
}

// Request модели

// YachtRequest запрос на создание или изменение яхты
type YachtRequest struct {
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	LengthFeet    float64     `json:"lengthFeet"`
	GuestCapacity int         `json:"guestCapacity"`
	Cabins        int         `json:"cabins"`
	PriceTiers    []PriceTier `json:"priceTiers"`
	AmenityCodes  []string    `json:"amenityCodes"`
	ImageURLs     []string    `json:"imageUrls"`
	IsPublished   *bool       `json:"isPublished,omitempty"` // По умолчанию true
}

// ToDomain конвертирует запрос в domain модель
func (r *YachtRequest) ToDomain(id int64) *domain.Yacht {
	tiers := make([]domain.PriceTier, len(r.PriceTiers))
	for i, t := range r.PriceTiers {
		tiers[i] = domain.PriceTier{CharterHours: t.CharterHours, RetailCents: t.RetailCents}
	}

	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}

	return &domain.Yacht{
		ID:            id,
		Slug:          r.Slug,
		Name:          r.Name,
		Description:   r.Description,
		Location:      domain.Location{City: r.City, Country: r.Country},
		LengthFeet:    r.LengthFeet,
		GuestCapacity: r.GuestCapacity,
		Cabins:        r.Cabins,
		PriceTiers:    tiers,
		AmenityCodes:  r.AmenityCodes,
		ImageURLs:     r.ImageURLs,
		IsPublished:   published,
	}
}

// Response модели

// YachtResponse карточка яхты
type YachtResponse struct {
	ID            int64       `json:"id"`
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	LengthFeet    float64     `json:"lengthFeet"`
	GuestCapacity int         `json:"guestCapacity"`
	Cabins        int         `json:"cabins"`
	PriceTiers    []PriceTier `json:"priceTiers"`
	StartingPrice float64     `json:"startingPrice"` // Минимальная цена тарифа в долларах
	AmenityCodes  []string    `json:"amenityCodes"`
	ImageURLs     []string    `json:"imageUrls"`
	IsPublished   bool        `json:"isPublished"`
}

// LocationResponse локация с количеством яхт
type LocationResponse struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	YachtCount int    `json:"yachtCount"`
}

// LocationListResponse ответ со списком локаций
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// YachtListResponse ответ со списком яхт для администратора
type YachtListResponse struct {
	Yachts []YachtResponse `json:"yachts"`
}

// Методы конвертации

// FromDomainYacht конвертирует domain модель в DTO
func FromDomainYacht(y *domain.Yacht) *YachtResponse {
	if y == nil {
		return nil
	}

	tiers := make([]PriceTier, len(y.PriceTiers))
	for i, t := range y.PriceTiers {
		tiers[i] = PriceTier{CharterHours: t.CharterHours, RetailCents: t.RetailCents}
	}

	return &YachtResponse{
		ID:            y.ID,
		Slug:          y.Slug,
		Name:          y.Name,
		Description:   y.Description,
		City:          y.Location.City,
		Country:       y.Location.Country,
		LengthFeet:    y.LengthFeet,
		GuestCapacity: y.GuestCapacity,
		Cabins:        y.Cabins,
		PriceTiers:    tiers,
		StartingPrice: y.StartingPrice(),
		AmenityCodes:  orEmpty(y.AmenityCodes),
		ImageURLs:     orEmpty(y.ImageURLs),
		IsPublished:   y.IsPublished,
	}
}

// FromDomainYachtList конвертирует список яхт в DTO
func FromDomainYachtList(yachts []domain.Yacht) []YachtResponse {
	resp := make([]YachtResponse, 0, len(yachts))
	for i := range yachts {
		resp = append(resp, *FromDomainYacht(&yachts[i]))
	}
	return resp
}

// FromDomainLocations конвертирует список локаций в DTO
func FromDomainLocations(locations []domain.LocationSummary) *LocationListResponse {
	resp := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, LocationResponse{
			City:       l.City,
			Country:    l.Country,
			YachtCount: l.YachtCount,
		})
	}
	return resp
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
