package notifier

import "time"

// Ключи маршрутизации событий
const (
	RoutingBookingCreated       = "booking.created"
	RoutingBookingCancelled     = "booking.cancelled"
	RoutingBookingStatusChanged = "booking.status_changed"
	RoutingSubscriberCreated    = "subscriber.created"
	RoutingContactCreated       = "contact.created"
)

// BookingEvent событие по бронированию, используется для писем клиенту и брокеру
type BookingEvent struct {
	Reference     string    `json:"reference"`
	YachtID       int64     `json:"yachtId"`
	YachtName     string    `json:"yachtName"`
	StartAt       time.Time `json:"startAt"`
	CharterHours  int       `json:"charterHours"`
	Guests        int       `json:"guests"`
	PriceCents    int64     `json:"priceCents"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Reason        *string   `json:"reason,omitempty"`
}

// SubscriberEvent новая подписка на рассылку
type SubscriberEvent struct {
	Email string `json:"email"`
}

// ContactEvent новое сообщение из формы обратной связи
type ContactEvent struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}
