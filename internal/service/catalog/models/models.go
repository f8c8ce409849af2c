package models

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	ID          string `json:"id,omitempty"` // Пустой ID генерируется автоматически
	Name        string `json:"name"`
	PriceRub    int    `json:"priceRub"`
	DurationMin int    `json:"durationMin"`
	DurationMax int    `json:"durationMax"`
}

// ToDomainService конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		ID:          r.ID,
		Name:        r.Name,
		PriceRub:    r.PriceRub,
		DurationMin: r.DurationMin,
		DurationMax: r.DurationMax,
	}
}

// UpdateServiceRequest запрос на обновление услуги
// Все поля опциональны - обновляются только переданные значения
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	PriceRub    *int    `json:"priceRub,omitempty"`
	DurationMin *int    `json:"durationMin,omitempty"`
	DurationMax *int    `json:"durationMax,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PriceRub      int       `json:"priceRub"`
	DurationMin   int       `json:"durationMin"`
	DurationMax   int       `json:"durationMax"`
	PriceLabel    string    `json:"priceLabel"`    // "500 ₽"
	DurationLabel string    `json:"durationLabel"` // "25-30 min"
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		PriceRub:      s.PriceRub,
		DurationMin:   s.DurationMin,
		DurationMax:   s.DurationMax,
		PriceLabel:    fmt.Sprintf("%d ₽", s.PriceRub),
		DurationLabel: DurationLabel(s.DurationMin, s.DurationMax),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}

// DurationLabel форматирует диапазон длительности
func DurationLabel(min, max int) string {
	if max <= 0 || max == min {
		return fmt.Sprintf("%d min", min)
	}
	return fmt.Sprintf("%d-%d min", min, max)
}
