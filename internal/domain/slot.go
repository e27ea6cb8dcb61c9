package domain

import "time"

// TimeSlot is an opaque label for one of the fixed daily booking intervals.
// The set of valid values is defined by the slot catalog and never changes
// at runtime.
type TimeSlot string

// slotCatalog фиксированный упорядоченный каталог слотов на день
// Порядок каталога определяет порядок отображения
var slotCatalog = []TimeSlot{
	"09:00 AM - 11:00 AM",
	"11:00 AM - 01:00 PM",
	"01:00 PM - 03:00 PM",
	"03:00 PM - 05:00 PM",
	"05:00 PM - 07:00 PM",
	"07:00 PM - 09:00 PM",
}

// SlotCatalog returns the full ordered catalog of bookable time slots.
// The returned slice is a copy; callers may not mutate the catalog.
func SlotCatalog() []TimeSlot {
	catalog := make([]TimeSlot, len(slotCatalog))
	copy(catalog, slotCatalog)
	return catalog
}

// IsValid returns true if the slot belongs to the catalog
func (s TimeSlot) IsValid() bool {
	for _, slot := range slotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableSlots возвращает доступные слоты на указанную дату с сохранением
// порядка каталога. Чистая функция: не мутирует аргументы, детерминирована.
//
// Если дата не выбрана (nil), возвращается полный каталог - это дефолт для
// UI, а не гарантия доступности. Иначе из каталога исключаются все слоты,
// на которые есть бронь (дата, слот).
func AvailableSlots(date *time.Time, reservations []*Reservation) []TimeSlot {
	if date == nil {
		return SlotCatalog()
	}

	reserved := make(map[TimeSlot]struct{}, len(reservations))
	for _, r := range reservations {
		if isSameDay(r.EventDate, *date) {
			reserved[r.Slot] = struct{}{}
		}
	}

	available := make([]TimeSlot, 0, len(slotCatalog))
	for _, slot := range slotCatalog {
		if _, taken := reserved[slot]; !taken {
			available = append(available, slot)
		}
	}
	return available
}

// SlotAvailable проверяет, что слот доступен на указанную дату
func SlotAvailable(slot TimeSlot, date *time.Time, reservations []*Reservation) bool {
	for _, s := range AvailableSlots(date, reservations) {
		if s == slot {
			return true
		}
	}
	return false
}

// IsBookable проверяет, что дата пригодна для бронирования: не раньше
// сегодняшнего дня, граница - локальная полночь. Предикат для date-picker,
// независим от фильтрации доступности.
func IsBookable(date, now time.Time) bool {
	return !isDateInPast(date, now)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
