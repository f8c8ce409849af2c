package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
)

// servicePrefix префикс генерируемых ID услуг
const servicePrefix = "svc_"

// Service сервис каталога услуг
type Service struct {
	repo     ServiceRepository
	defaults []domain.Service
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
// Без хранилища (repo == nil) каталог отдает defaults и не допускает изменений
func NewService(repo ServiceRepository, defaults []domain.Service, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// List возвращает все услуги
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	if s.repo == nil {
		return models.FromDomainServiceList(s.defaultServices()), nil
	}

	services, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	if s.repo == nil {
		for _, svc := range s.defaultServices() {
			if svc.ID == id {
				return models.FromDomainService(svc), nil
			}
		}
		return nil, ErrServiceNotFound
	}

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// Create создает услугу, генерируя ID вида svc_<uuid> если он не передан
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}

	svc := req.ToDomainService()
	if err := validateService(svc); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = servicePrefix + uuid.New().String()
	}

	s.logger.Info("Create: creating service id=%s name=%q", svc.ID, svc.Name)

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateService) {
			s.logger.Warn("Create: service id=%s already exists", svc.ID)
			return nil, ErrServiceAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет переданные поля услуги
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}

	s.logger.Info("Update: updating service id=%s", id)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	existing.Name = ptr.Deref(req.Name, existing.Name)
	existing.PriceRub = ptr.Deref(req.PriceRub, existing.PriceRub)
	existing.DurationMin = ptr.Deref(req.DurationMin, existing.DurationMin)
	existing.DurationMax = ptr.Deref(req.DurationMax, existing.DurationMax)

	if err := validateService(existing); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

// SeedDefaults заполняет пустой каталог услугами по умолчанию
// Возвращает количество добавленных услуг
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, ErrNotConfigured
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: SeedDefaults - count services: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("SeedDefaults: catalog already has %d services", count)
		return 0, nil
	}

	seeded := 0
	for _, svc := range s.defaultServices() {
		if err := validateService(svc); err != nil {
			return seeded, fmt.Errorf("default service %s: %w", svc.ID, err)
		}
		if _, err := s.repo.Create(ctx, svc); err != nil {
			if errors.Is(err, catalogRepo.ErrDuplicateService) {
				continue
			}
			return seeded, fmt.Errorf("%w: SeedDefaults - create %s: %v", ErrInternal, svc.ID, err)
		}
		seeded++
	}

	s.logger.Info("SeedDefaults: seeded %d services", seeded)
	return seeded, nil
}

func (s *Service) defaultServices() []*domain.Service {
	services := make([]*domain.Service, len(s.defaults))
	for i := range s.defaults {
		svc := s.defaults[i]
		if svc.ID == "" {
			svc.ID = fmt.Sprintf("%s%d", servicePrefix, i+1)
		}
		services[i] = &svc
	}
	return services
}
