package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	log         *slog.Logger
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		log:         logger.WithService("vehicle"),
	}
}

func (s *vehicleService) Register(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return errors.Wrap(domain.ErrInvalidArgument, "vehicle must not be nil")
	}
	if strings.TrimSpace(vehicle.Plate) == "" {
		return errors.Wrap(domain.ErrInvalidArgument, "vehicle plate is required")
	}
	if strings.TrimSpace(vehicle.Name) == "" {
		return errors.Wrap(domain.ErrInvalidArgument, "vehicle name is required")
	}
	if !vehicle.Category.Valid() {
		return errors.Wrapf(domain.ErrInvalidArgument, "unknown vehicle category %q", string(vehicle.Category))
	}
	if err := domain.ValidatePlate(vehicle.Plate); err != nil {
		return err
	}

	if _, err := s.vehicleRepo.GetByPlate(ctx, vehicle.Plate); err == nil {
		return errors.Wrapf(domain.ErrConflict, "plate %s already registered", vehicle.Plate)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	vehicle.Available = true
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return err
	}
	s.log.Info("Vehicle registered", "plate", vehicle.Plate, "category", string(vehicle.Category))
	return nil
}

func (s *vehicleService) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return errors.Wrap(domain.ErrInvalidArgument, "vehicle must not be nil")
	}
	if _, err := s.vehicleRepo.GetByPlate(ctx, vehicle.Plate); err != nil {
		return err
	}
	return s.vehicleRepo.Save(ctx, vehicle)
}

func (s *vehicleService) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	if strings.TrimSpace(plate) == "" {
		return nil, errors.Wrap(domain.ErrInvalidArgument, "plate is required")
	}
	return s.vehicleRepo.GetByPlate(ctx, plate)
}

func (s *vehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) ListAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.Filter(ctx, func(v *domain.Vehicle) bool { return v.Available })
}

func (s *vehicleService) SearchByName(ctx context.Context, term string) ([]*domain.Vehicle, error) {
	t := strings.ToLower(term)
	return s.vehicleRepo.Filter(ctx, func(v *domain.Vehicle) bool {
		return strings.Contains(strings.ToLower(v.Name), t)
	})
}
