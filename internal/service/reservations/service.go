package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/reservation"
	"github.com/timisoara-dining/reservation-service/internal/service/reservations/models"
)

// Service сервис для чтения броней и смены их статуса
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает все брони вместе с инвентарем для таблицы персонала
// Сортировка: дата по убыванию, слот дня по возрастанию, id по возрастанию
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.ListWithInventory(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Stats получает агрегированные счетчики броней
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	stats, err := s.reservationRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

// UpdateStatus применяет переход статуса брони
// Переход валидируется по state machine относительно статуса, который
// сообщила вызывающая сторона, а запись выполняется условно: статус
// меняется только если в хранилище он всё ещё равен заявленному. Если
// строка изменилась под вызывающей стороной - ErrConflict, а не тихая
// перезапись чужого перехода.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: reservation id=%s, %s -> %s", id, req.CurrentStatus, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	currentStatus, err := models.ToDomainStatus(req.CurrentStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid current status=%s for reservation id=%s", req.CurrentStatus, id)
		return fmt.Errorf("%w: invalid current status", ErrInvalidInput)
	}

	if !currentStatus.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%s",
			currentStatus, newStatus, id)
		return fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidTransition, currentStatus, newStatus)
	}

	err = s.reservationRepo.UpdateStatusFrom(ctx, id, newStatus, currentStatus)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrStatusNotUpdated) {
			// Ноль измененных строк: либо брони нет, либо её статус уже
			// другой - различаем повторным чтением
			if _, getErr := s.reservationRepo.GetByID(ctx, id); getErr != nil {
				if errors.Is(getErr, reservationRepo.ErrReservationNotFound) {
					s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
					return ErrReservationNotFound
				}
				s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, getErr)
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, getErr)
			}
			s.logger.Warn("UpdateStatus: stale status for reservation id=%s, expected %s", id, currentStatus)
			return ErrConflict
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%s moved to status=%s", id, newStatus)
	return nil
}
