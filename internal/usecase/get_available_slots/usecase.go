package get_available_slots

import (
	"context"
	"fmt"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Бронирования перечитываются из репозитория на каждый вызов, а не кэшируются:
// это best-effort защита от устаревшей доступности при параллельных
// бронированиях. Настоящая гарантия - атомарный check-and-reserve в
// create_reservation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не выбрана - возвращаем полный каталог без обращения к БД
	if req.Date == nil {
		uc.logger.Info("GetAvailableSlots: no date selected, returning full catalog")
		return &Response{
			Date:     nil,
			Slots:    domain.SlotCatalog(),
			Bookable: false,
		}, nil
	}

	// 3. Получаем бронирования на дату
	reservations, err := uc.reservationRepo.ListByDate(ctx, *req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Фильтруем каталог
	slots := domain.AvailableSlots(req.Date, reservations)

	// 5. Отдельный предикат для date-picker: прошедшие даты не бронируются,
	// но сам расчет доступности этого не учитывает
	bookable := domain.IsBookable(*req.Date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: date=%s available=%d/%d bookable=%t",
		req.Date.Format(domain.DateFormat), len(slots), len(domain.SlotCatalog()), bookable)

	return &Response{
		Date:     req.Date,
		Slots:    slots,
		Bookable: bookable,
	}, nil
}
