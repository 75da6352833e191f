package get_yacht_availability

import (
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// Limits ограничения на бронирование из конфигурации
type Limits struct {
	AdvanceDays    int // 0 - без ограничения
	MinNoticeHours int
}

// Request модель запроса на получение расписания яхты
type Request struct {
	YachtID      int64     // ID яхты
	Date         time.Time // Дата (без времени)
	CharterHours int       // Длительность чартера, должна совпадать с тарифом яхты
}

// Response модель ответа со списком отправлений
type Response struct {
	Date         time.Time              // Дата, на которую запрашивалось расписание
	YachtID      int64                  // ID яхты
	CharterHours int                    // Длительность чартера
	PriceCents   int64                  // Стоимость тарифа
	Slots        []domain.AvailableSlot // Отправления в порядке времени
}
