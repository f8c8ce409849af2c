package domain

import "time"

// Service represents an item of the service catalog
type Service struct {
	ID          string
	Name        string
	PriceRub    int
	DurationMin int
	DurationMax int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Durations returns duration bounds, falling back to fallback minutes when unset
func (s *Service) Durations(fallback int) (int, int) {
	min := s.DurationMin
	if min <= 0 {
		min = fallback
	}
	max := s.DurationMax
	if max <= 0 {
		max = min
	}
	return min, max
}
