package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "5b4b2c4e-2a7f-4f7b-9d7e-0a1b2c3d4e5f",
		BookingDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		SlotTime:      "15:00:00",
		ServiceID:     "svc_lining",
		ServiceName:   "Lining",
		DurationMin:   10,
		DurationMax:   15,
		CustomerName:  "Ivan",
		CustomerPhone: "+79001234567",
		Status:        domain.StatusPending,
		BookingRef:    "The Business Zm-004217",
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(
			"5b4b2c4e-2a7f-4f7b-9d7e-0a1b2c3d4e5f",
			"2026-03-10",
			"15:00:00",
			"svc_lining",
			"Lining",
			10,
			15,
			"Ivan",
			"+79001234567",
			"pending",
			"The Business Zm-004217",
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	got, err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRepository_GetBookedSlots(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_time FROM get_booked_slots($1)")).
		WithArgs("2026-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"slot_time"}).
			AddRow("14:00:00").
			AddRow(time.Date(0, 1, 1, 16, 30, 0, 0, time.UTC)))

	slots, err := repo.GetBookedSlots(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00:00", "16:30:00"}, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBookedSlots_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("get_booked_slots")).
		WillReturnRows(sqlmock.NewRows([]string{"slot_time"}))

	slots, err := repo.GetBookedSlots(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestRepository_GetBookedSlots_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("get_booked_slots")).
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetBookedSlots(context.Background(), "2026-03-10")
	assert.ErrorIs(t, err, ErrExecQuery)
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_date = $1 ORDER BY booking_date ASC, slot_time ASC")).
		WithArgs("2026-03-10").
		WillReturnRows(bookingRows().
			AddRow("a", today, "14:00:00", "svc_beard", "Beard trim", 10, 15, "A", "+7900111222", "pending", "ref-1", createdAt).
			AddRow("b", today, "14:30:00", "svc_lining", "Lining", 10, 15, "B", "+7900111333", "confirmed", "ref-2", createdAt))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{Date: &today})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "a", bookings[0].ID)
	assert.Equal(t, types.TimeString("14:00:00"), bookings[0].SlotTime)
	assert.Equal(t, domain.StatusConfirmed, bookings[1].Status)
	assert.Equal(t, createdAt, bookings[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUpcoming(t *testing.T) {
	repo, mock := newMockRepo(t)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE booking_date > $1")).
		WithArgs("2026-03-10").
		WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{After: &today})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("a").
		WillReturnRows(bookingRows().
			AddRow("a", date, "14:00:00", "svc_beard", "Beard trim", 10, 15, "A", "+7900111222", "pending", "ref-1", nil))

	b, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Beard trim", b.ServiceName)
	assert.True(t, b.CreatedAt.IsZero())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		result  func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3")).
					WithArgs("cancelled", "a", "confirmed").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "status changed",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrStatusChanged,
		},
		{
			name: "exec error",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
					WillReturnError(errors.New("read-only transaction"))
			},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.result(mock)

			err := repo.UpdateStatus(context.Background(), "a", domain.StatusConfirmed, domain.StatusCancelled)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
