package get_available_slots

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// Request модель запроса на получение слотов места
type Request struct {
	ListingID int64
	DeskLabel string
	Date      string // "YYYY-MM-DD" или "today"
	Duration  string // пусто = шаг сетки
}

// Response модель ответа со слотами места.
// Время слотов указано в часовом поясе объявления.
type Response struct {
	ListingID int64
	DeskLabel string
	Date      time.Time
	Timezone  string
	Slots     []domain.DeskSlot
}
