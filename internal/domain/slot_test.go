package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(day time.Time, slot domain.TimeSlot) *domain.Reservation {
	return &domain.Reservation{EventDate: day, Slot: slot}
}

func TestSlotCatalog(t *testing.T) {
	catalog := domain.SlotCatalog()

	require.Len(t, catalog, 6)
	assert.Equal(t, domain.TimeSlot("09:00 AM - 11:00 AM"), catalog[0])
	assert.Equal(t, domain.TimeSlot("07:00 PM - 09:00 PM"), catalog[5])

	// Возвращаемый slice - копия, мутация не трогает каталог
	catalog[0] = "mutated"
	assert.Equal(t, domain.TimeSlot("09:00 AM - 11:00 AM"), domain.SlotCatalog()[0])
}

func TestTimeSlot_IsValid(t *testing.T) {
	assert.True(t, domain.TimeSlot("11:00 AM - 01:00 PM").IsValid())
	assert.False(t, domain.TimeSlot("10:00 AM - 12:00 PM").IsValid())
	assert.False(t, domain.TimeSlot("").IsValid())
}

func TestAvailableSlots(t *testing.T) {
	day := date(2024, time.September, 10)

	t.Run("nil date returns full catalog", func(t *testing.T) {
		got := domain.AvailableSlots(nil, []*domain.Reservation{
			reservation(day, "09:00 AM - 11:00 AM"),
		})
		assert.Equal(t, domain.SlotCatalog(), got)
	})

	t.Run("no reservations returns full catalog", func(t *testing.T) {
		got := domain.AvailableSlots(&day, nil)
		assert.Equal(t, domain.SlotCatalog(), got)
	})

	t.Run("reserved slots excluded, catalog order preserved", func(t *testing.T) {
		got := domain.AvailableSlots(&day, []*domain.Reservation{
			reservation(day, "09:00 AM - 11:00 AM"),
			reservation(day, "01:00 PM - 03:00 PM"),
		})

		assert.Equal(t, []domain.TimeSlot{
			"11:00 AM - 01:00 PM",
			"03:00 PM - 05:00 PM",
			"05:00 PM - 07:00 PM",
			"07:00 PM - 09:00 PM",
		}, got)
	})

	t.Run("reservations for other dates ignored", func(t *testing.T) {
		otherDay := date(2024, time.September, 11)
		got := domain.AvailableSlots(&day, []*domain.Reservation{
			reservation(otherDay, "09:00 AM - 11:00 AM"),
		})
		assert.Equal(t, domain.SlotCatalog(), got)
	})

	t.Run("all slots reserved yields empty non-nil slice", func(t *testing.T) {
		var reservations []*domain.Reservation
		for _, slot := range domain.SlotCatalog() {
			reservations = append(reservations, reservation(day, slot))
		}

		got := domain.AvailableSlots(&day, reservations)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("pure: does not mutate input", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(day, "09:00 AM - 11:00 AM"),
		}

		first := domain.AvailableSlots(&day, reservations)
		second := domain.AvailableSlots(&day, reservations)

		assert.Equal(t, first, second)
		assert.Equal(t, domain.TimeSlot("09:00 AM - 11:00 AM"), reservations[0].Slot)
	})
}

func TestSlotAvailable(t *testing.T) {
	day := date(2024, time.September, 10)
	reservations := []*domain.Reservation{
		reservation(day, "09:00 AM - 11:00 AM"),
	}

	assert.False(t, domain.SlotAvailable("09:00 AM - 11:00 AM", &day, reservations))
	assert.True(t, domain.SlotAvailable("11:00 AM - 01:00 PM", &day, reservations))
	assert.False(t, domain.SlotAvailable("not a slot", &day, nil))
}

func TestIsBookable(t *testing.T) {
	now := time.Date(2024, time.September, 10, 15, 30, 0, 0, time.UTC)

	t.Run("today is bookable regardless of time of day", func(t *testing.T) {
		assert.True(t, domain.IsBookable(date(2024, time.September, 10), now))
	})

	t.Run("future date is bookable", func(t *testing.T) {
		assert.True(t, domain.IsBookable(date(2024, time.December, 31), now))
	})

	t.Run("yesterday is not bookable", func(t *testing.T) {
		assert.False(t, domain.IsBookable(date(2024, time.September, 9), now))
	})
}
