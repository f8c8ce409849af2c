package domain

import "github.com/m04kA/barbershop-booking/pkg/types"

// Slot represents a candidate start time with its availability
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// CountAvailable returns the number of bookable slots
func CountAvailable(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}
