package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Settings параметры расписания
type Settings struct {
	Hours               domain.BusinessHours
	SlotIntervalMinutes int
	MaxDaysAhead        int
}

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     Settings
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// bookingRepo может быть nil, если хранилище не настроено
func NewUseCase(
	bookingRepo BookingRepository,
	settings Settings,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Каждый вызов заново читает занятые слоты из хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Хранилище должно быть настроено
	if uc.bookingRepo == nil {
		uc.logger.Warn("GetAvailableSlots: booking store is not configured")
		return nil, ErrNotConfigured
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s, seq=%d", dateStr, req.Seq)

	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.settings.MaxDaysAhead); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Генерируем слоты по рабочим часам
	dayType := domain.DayTypeOf(req.Date)
	hours := uc.settings.Hours.For(req.Date)
	candidates := GenerateSlots(req.Date, uc.settings.Hours, uc.settings.SlotIntervalMinutes)

	resp := &Response{
		Date:      dateOnly(req.Date),
		DayType:   dayType,
		Hours:     hours,
		HoursHint: hoursHint(dayType, hours),
		Seq:       req.Seq,
		Slots:     []domain.Slot{},
	}

	// 4. Получаем занятые слоты
	booked, err := uc.bookingRepo.GetBookedSlots(ctx, dateStr)
	if err != nil {
		uc.metrics.ObserveAvailabilityFetch(false)
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for %s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	uc.metrics.ObserveAvailabilityFetch(true)

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for %s", dateStr)
		return resp, nil
	}

	// 5. Помечаем занятые
	resp.Slots = markAvailability(candidates, booked)

	uc.logger.Info("GetAvailableSlots: %d slots (%d free) for %s",
		len(resp.Slots), domain.CountAvailable(resp.Slots), dateStr)

	return resp, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveAvailabilityFetch(bool) {}
