package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// validateService проверяет поля услуги
func validateService(svc *domain.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)

	if svc.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len(svc.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	if svc.PriceRub < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if svc.DurationMin < domain.MinServiceDuration {
		return fmt.Errorf("%w: duration min must be >= %d", ErrInvalidInput, domain.MinServiceDuration)
	}
	if svc.DurationMax < domain.MinServiceDuration {
		return fmt.Errorf("%w: duration max must be >= %d", ErrInvalidInput, domain.MinServiceDuration)
	}
	if svc.DurationMax < svc.DurationMin {
		return fmt.Errorf("%w: duration max must be >= duration min", ErrInvalidInput)
	}
	return nil
}
