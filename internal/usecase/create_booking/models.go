package create_booking

import "time"

// Limits ограничения на бронирование из конфигурации
type Limits struct {
	AdvanceDays    int // 0 - без ограничения
	MinNoticeHours int
}

// Request модель запроса на создание бронирования
type Request struct {
	YachtID       int64     // ID яхты
	StartAt       time.Time // Время отправления
	CharterHours  int       // Длительность чартера, должна совпадать с тарифом яхты
	Guests        int       // Количество гостей
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента, нужен для отмены
	CustomerPhone *string   // Телефон (опционально)
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	Reference    string    // Публичный номер бронирования
	YachtID      int64     // ID яхты
	StartAt      time.Time // Время отправления
	EndAt        time.Time // Время возврата
	CharterHours int       // Длительность в часах
	Guests       int       // Количество гостей
	Status       string    // Статус бронирования

	// Денормализованные данные
	YachtName     string  // Название яхты
	PriceCents    int64   // Стоимость тарифа в центах
	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone *string // Телефон
	Notes         *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
