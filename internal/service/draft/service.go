package draft

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// Service хранит черновики бронирований и поддерживает инвариант формы:
// выбранное время всегда принадлежит множеству доступных слотов для
// выбранной даты. Сверка выполняется синхронно внутри Update, а не
// остается на совести вызывающего кода.
//
// Хранилище in-memory: черновик живет в рамках сессии браузера и не
// переживает рестарт сервиса, что для формы бронирования приемлемо.
type Service struct {
	mu     sync.Mutex
	drafts map[string]*domain.BookingDraft

	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
	ttl             time.Duration
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(reservationRepo ReservationRepository, ttl time.Duration, logger Logger) *Service {
	return &Service{
		drafts:          make(map[string]*domain.BookingDraft),
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		ttl:             ttl,
	}
}

// Create создает пустой черновик и возвращает его
func (s *Service) Create(ctx context.Context) (*View, error) {
	now := s.timeProvider.Now()
	d := &domain.BookingDraft{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	s.logger.Info("Draft: created id=%s", d.ID)

	// Дата еще не выбрана - доступен полный каталог
	return &View{
		Draft:          d.Clone(),
		AvailableSlots: domain.SlotCatalog(),
	}, nil
}

// Get возвращает черновик вместе с актуальной доступностью для его даты
// Доступность перечитывается из репозитория на каждый вызов
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	s.mu.Lock()
	d, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	snapshot := d.Clone()
	s.mu.Unlock()

	available, err := s.availableFor(ctx, snapshot.EventDate)
	if err != nil {
		return nil, err
	}

	return &View{Draft: snapshot, AvailableSlots: available}, nil
}

// Update применяет частичное обновление полей черновика
//
// Смена даты синхронно пересчитывает доступные слоты и сбрасывает выбранное
// время, если на новую дату оно занято. Установка времени проверяется на
// принадлежность текущему множеству доступных слотов. Промежуточно
// невалидные значения остальных полей (имя из одного символа) допускаются -
// полная валидация выполняется только при submit.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.Message != nil {
		d.Message = *req.Message
	}

	timeCleared := false

	if req.EventDate != nil {
		date := *req.EventDate
		if !domain.IsBookable(date, s.timeProvider.Now()) {
			return nil, ErrDateNotBookable
		}
		d.EventDate = &date
	}

	// Доступность пересчитывается при любой смене даты или времени
	available, err := s.availableFor(ctx, d.EventDate)
	if err != nil {
		return nil, err
	}

	if req.EventDate != nil && d.EventTime != nil {
		// Сверка: выбранное ранее время могло стать недоступным
		if !slotIn(available, *d.EventTime) {
			s.logger.Info("Draft: id=%s date changed, clearing unavailable time %q", d.ID, *d.EventTime)
			d.EventTime = nil
			timeCleared = true
		}
	}

	if req.EventTime != nil {
		slot := *req.EventTime
		if !slot.IsValid() {
			return nil, ErrInvalidSlot
		}
		if !slotIn(available, slot) {
			return nil, ErrSlotUnavailable
		}
		d.EventTime = &slot
	}

	d.UpdatedAt = s.timeProvider.Now()

	return &View{
		Draft:          d.Clone(),
		AvailableSlots: available,
		TimeCleared:    timeCleared,
	}, nil
}

// Delete удаляет черновик
// Вызывается после успешного завершения бронирования или явной отмены
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	s.logger.Info("Draft: deleted id=%s", id)
	return nil
}

// SweepExpired удаляет черновики, не обновлявшиеся дольше TTL
// Возвращает количество удаленных черновиков
func (s *Service) SweepExpired() int {
	deadline := s.timeProvider.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(deadline) {
			delete(s.drafts, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info("Draft: swept %d expired drafts", removed)
	}
	return removed
}

// RunSweeper периодически вызывает SweepExpired до отмены контекста
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepExpired()
		}
	}
}

// availableFor возвращает доступные слоты для даты (полный каталог при nil)
func (s *Service) availableFor(ctx context.Context, date *time.Time) ([]domain.TimeSlot, error) {
	if date == nil {
		return domain.SlotCatalog(), nil
	}

	reservations, err := s.reservationRepo.ListByDate(ctx, *date)
	if err != nil {
		s.logger.Error("Draft: failed to list reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	return domain.AvailableSlots(date, reservations), nil
}

func slotIn(slots []domain.TimeSlot, slot domain.TimeSlot) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
