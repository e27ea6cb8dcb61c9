package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	reservationRepo "github.com/corypride/pictureMePerfect360/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования после подтверждения оплаты
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию: проверка доступности и вставка
// выполняются атомарно (check-and-reserve), это единственная настоящая
// защита от двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s slot=%q session=%s",
		req.EventDate.Format(domain.DateFormat), req.Slot, req.StripeSessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation
	alreadyExisted := false

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Идемпотентность: webhook событие может прийти повторно
		existing, err := uc.reservationRepo.GetByStripeSessionID(txCtx, req.StripeSessionID)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to check existing reservation: %v", err)
			return fmt.Errorf("%w: failed to check existing reservation: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Info("CreateReservation: reservation id=%d already exists for session=%s",
				existing.ID, req.StripeSessionID)
			result = existing
			alreadyExisted = true
			return nil
		}

		// 2.2. Проверяем доступность слота на дату
		reservations, err := uc.reservationRepo.ListByDate(txCtx, req.EventDate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if !domain.SlotAvailable(req.Slot, &req.EventDate, reservations) {
			uc.logger.Warn("CreateReservation: slot %q not available on %s",
				req.Slot, req.EventDate.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 2.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			EventDate:       req.EventDate,
			Slot:            req.Slot,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			Message:         req.Message,
			StripeSessionID: req.StripeSessionID,
			AmountCents:     req.AmountCents,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !alreadyExisted {
		uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	}

	return &Response{
		ID:             result.ID,
		EventDate:      result.EventDate,
		Slot:           result.Slot,
		CreatedAt:      result.CreatedAt,
		AlreadyExisted: alreadyExisted,
	}, nil
}
