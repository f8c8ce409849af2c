package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultMaxDaysAhead        = 30
	DefaultSessionTTLMinutes   = 480
)

// Business validation constants
const (
	MinPhoneLength       = 8
	BookingRefDigits     = 6
	BookingRefMax        = 1000000 // суффикс в диапазоне [0, BookingRefMax)
	MinServiceDuration   = 1
	MaxServiceNameLength = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingsTable и BookedSlotsFunction имена объектов в хранилище
const (
	BookingsTable       = "bookings"
	ServicesTable       = "services"
	BookedSlotsFunction = "get_booked_slots"
)

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses статусы, занимающие слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
