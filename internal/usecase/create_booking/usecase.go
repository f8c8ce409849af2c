package create_booking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

// Settings параметры записи
type Settings struct {
	BusinessName        string
	Hours               domain.BusinessHours
	SlotIntervalMinutes int
	MaxDaysAhead        int
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      ServiceCatalog
	availability AvailabilityResolver
	settings     Settings
	timeProvider TimeProvider
	random       io.Reader
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// bookingRepo может быть nil, если хранилище не настроено
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	availability AvailabilityResolver,
	settings Settings,
	timeProvider TimeProvider,
	m Metrics,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &get_available_slots.RealTimeProvider{}
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		availability: availability,
		settings:     settings,
		timeProvider: timeProvider,
		metrics:      m,
		logger:       logger,
	}
}

// Execute выполняет одну попытку записи
// Двойную запись исключает ограничение уникальности хранилища, конфликт возвращается как *ConflictError
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Хранилище должно быть настроено
	if uc.bookingRepo == nil {
		uc.logger.Warn("CreateBooking: booking store is not configured")
		return nil, ErrNotConfigured
	}

	booking, service, err := uc.validate(ctx, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			uc.metrics.ObserveBooking(metrics.BookingOutcomeInvalid)
			uc.logger.Warn("CreateBooking: validation failed: %v", err)
		} else {
			uc.metrics.ObserveBooking(metrics.BookingOutcomeFailed)
			uc.logger.Error("CreateBooking: %v", err)
		}
		return nil, err
	}

	dateStr := booking.BookingDate.Format(domain.DateFormat)
	uc.logger.Info("CreateBooking: date=%s, slot=%s, service=%s", dateStr, booking.SlotTime, service.ID)

	// 7. Формируем запись
	ref, err := makeBookingRef(uc.settings.BusinessName, uc.random)
	if err != nil {
		uc.metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		uc.logger.Error("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	booking.ID = uuid.New().String()
	booking.BookingRef = ref
	booking.Status = domain.StatusPending
	booking.ServiceID = service.ID
	booking.ServiceName = service.Name
	booking.DurationMin, booking.DurationMax = service.Durations(uc.settings.SlotIntervalMinutes)

	// 8. Атомарная вставка
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.metrics.ObserveBooking(metrics.BookingOutcomeConflict)
			uc.logger.Warn("CreateBooking: slot %s %s was just taken", dateStr, booking.SlotTime)
			return nil, &ConflictError{Availability: uc.refresh(ctx, booking.BookingDate, req.Seq)}
		}
		uc.metrics.ObserveBooking(metrics.BookingOutcomeFailed)
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	uc.metrics.ObserveBooking(metrics.BookingOutcomeCreated)
	uc.logger.Info("CreateBooking: created booking id=%s ref=%s", created.ID, created.BookingRef)

	return &Response{
		Booking: created,
		Confirmation: Confirmation{
			Date:        created.BookingDate,
			Slot:        created.SlotTime,
			ServiceName: created.ServiceName,
			BookingRef:  created.BookingRef,
		},
		Availability: uc.refresh(ctx, created.BookingDate, req.Seq),
	}, nil
}

// validate проверяет запрос в фиксированном порядке, возвращая первую ошибку
func (uc *UseCase) validate(ctx context.Context, req *Request) (*domain.Booking, *domain.Service, error) {
	if req == nil {
		return nil, nil, validationError(ErrDateRequired, "empty request")
	}

	// 2. Дата
	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.settings.MaxDaysAhead); err != nil {
		return nil, nil, err
	}
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// 3. Услуга
	service, err := uc.resolveService(ctx, req.ServiceID)
	if err != nil {
		return nil, nil, err
	}

	// 4. Слот
	slot, err := validateSlot(req.SlotTime, date, uc.settings.Hours, uc.settings.SlotIntervalMinutes)
	if err != nil {
		return nil, nil, err
	}

	// 5. Имя
	name, err := validateName(req.CustomerName)
	if err != nil {
		return nil, nil, err
	}

	// 6. Телефон
	phone, err := validatePhone(req.CustomerPhone)
	if err != nil {
		return nil, nil, err
	}

	return &domain.Booking{
		BookingDate:   date,
		SlotTime:      slot,
		CustomerName:  name,
		CustomerPhone: phone,
	}, service, nil
}

func (uc *UseCase) resolveService(ctx context.Context, id string) (*domain.Service, error) {
	if id == "" {
		return nil, validationError(ErrServiceNotFound, "service is not selected")
	}
	service, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, validationError(ErrServiceNotFound, "%s", id)
		}
		return nil, fmt.Errorf("%w: failed to get service %s: %v", ErrSubmissionFailed, id, err)
	}
	return service, nil
}

// refresh запрашивает свежий снимок доступности
// Ошибка обновления не отменяет результат записи
func (uc *UseCase) refresh(ctx context.Context, date time.Time, seq uint64) *get_available_slots.Response {
	if uc.availability == nil {
		return nil
	}
	resp, err := uc.availability.Execute(ctx, &get_available_slots.Request{Date: date, Seq: seq})
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to refresh availability for %s: %v", date.Format(domain.DateFormat), err)
		return nil
	}
	return resp
}

type nopMetrics struct{}

func (nopMetrics) ObserveBooking(string) {}
