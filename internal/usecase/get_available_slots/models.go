package get_available_slots

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// Request модель запроса на получение доступных слотов
// Date может быть не задана (nil) - в этом случае возвращается полный
// каталог как дефолт для UI, а не гарантия доступности
type Request struct {
	Date *time.Time
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     *time.Time        // Дата, на которую запрашивались слоты (nil если не задана)
	Slots    []domain.TimeSlot // Доступные слоты в порядке каталога
	Bookable bool              // Пригодна ли дата для бронирования (не в прошлом)
}
