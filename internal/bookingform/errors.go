package bookingform

import "errors"

var (
	// ErrStaleResponse ответ относится к устаревшему выбору и отброшен
	ErrStaleResponse = errors.New("bookingform: stale availability response")

	// ErrSlotUnavailable выбранного слота нет среди свободных
	ErrSlotUnavailable = errors.New("bookingform: slot is not available")

	// ErrSubmitInProgress предыдущая отправка еще не завершена
	ErrSubmitInProgress = errors.New("bookingform: submission already in progress")
)
