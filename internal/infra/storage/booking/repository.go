package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"booking_date",
	"slot_time",
	"service_id",
	"service_name",
	"duration_min",
	"duration_max",
	"customer_name",
	"customer_phone",
	"status",
	"booking_ref",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Уникальность активного бронирования на (дата, время) обеспечивает частичный индекс,
// его нарушение возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert(domain.BookingsTable).
		Columns(
			"id",
			"booking_date",
			"slot_time",
			"service_id",
			"service_name",
			"duration_min",
			"duration_max",
			"customer_name",
			"customer_phone",
			"status",
			"booking_ref",
		).
		Values(
			booking.ID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.SlotTime,
			booking.ServiceID,
			booking.ServiceName,
			booking.DurationMin,
			booking.DurationMax,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.Status,
			booking.BookingRef,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, booking.BookingDate.Format(domain.DateFormat), booking.SlotTime)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetBookedSlots возвращает времена начала активных бронирований на дату
// Отмененные бронирования функцией get_booked_slots не возвращаются
func (r *Repository) GetBookedSlots(ctx context.Context, date string) ([]types.TimeString, error) {
	query := fmt.Sprintf("SELECT slot_time FROM %s($1)", domain.BookedSlotsFunction)

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan slot_time: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(domain.BookingsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, отсортированные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(domain.BookingsTable).
		OrderBy("booking_date ASC", "slot_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.After != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"booking_date": filter.After.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Если запись не найдена или ее статус уже не from, возвращается ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update(domain.BookingsTable).
		Set("status", to).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingDate,
		&booking.SlotTime,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.DurationMin,
		&booking.DurationMax,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.Status,
		&booking.BookingRef,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
