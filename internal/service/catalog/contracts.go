package catalog

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
