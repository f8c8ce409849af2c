package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// bookingRepo может быть nil, если хранилище не настроено
func NewService(
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает бронирования на сегодня (today) или после сегодня (upcoming)
// Порядок: дата, затем время слота по возрастанию
func (s *Service) List(ctx context.Context, mode string) (*models.BookingListResponse, error) {
	if s.bookingRepo == nil {
		return nil, ErrNotConfigured
	}

	listMode, ok := models.ParseListMode(mode)
	if !ok {
		s.logger.Warn("List: invalid mode=%q", mode)
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	y, m, d := s.timeProvider.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var filter domain.BookingsFilter
	switch listMode {
	case models.ModeUpcoming:
		filter.After = &today
	default:
		filter.Date = &today
	}

	s.logger.Info("List: fetching %s bookings, today=%s", listMode, today.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d %s bookings", len(bookings), listMode)
	return models.FromDomainBookingList(listMode, bookings), nil
}

// UpdateStatus переводит бронирование в новый статус
// confirmed допустим только из pending, cancelled и completed из pending или confirmed
// Отмена освобождает слот для новых записей
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if s.bookingRepo == nil {
		return nil, ErrNotConfigured
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, status)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: booking id=%s cannot move from %s to %s", bookingID, booking.Status, status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, status); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			s.logger.Warn("UpdateStatus: booking id=%s changed status concurrently, expected %s", bookingID, booking.Status)
			return nil, fmt.Errorf("%w: status is no longer %s", ErrInvalidTransition, booking.Status)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status
	s.logger.Info("UpdateStatus: booking id=%s is now %s", bookingID, status)
	return models.FromDomainBooking(booking), nil
}
