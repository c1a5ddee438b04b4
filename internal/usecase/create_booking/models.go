package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования.
// Дата, время и длительность передаются как их ввел пользователь.
type Request struct {
	ListingID int64
	DeskLabel string
	Date      string // "YYYY-MM-DD" или "today"
	Time      string // "HH:MM", допускается am/pm
	Duration  string // "2h", "90m", "1h30m"
	Price     int64
	Timezone  string // часовой пояс пользователя, пусто = пояс объявления

	UserID *int64 // nil = анонимный пользователь
	Email  string // email из токена
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ListingID   int64
	DeskLabel   string
	Date        string
	Time        string
	Duration    string
	Status      string
	TotalPrice  int64
	CheckInCode string
	UserID      *int64

	// Нормализованные к часовому поясу объявления; nil, если запрос не разобран
	BookingDate     *time.Time
	StartMinute     *int
	DurationMinutes *int
	Timezone        string

	CreatedAt time.Time
}
