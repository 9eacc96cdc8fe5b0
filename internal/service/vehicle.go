package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.Name == "" {
		return &domain.MissingFieldError{Field: "name"}
	}
	if vehicle.Matricule == "" {
		return &domain.MissingFieldError{Field: "matricule"}
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id, partnerID int32) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "vehicle", Key: fmt.Sprintf("%d", id)}
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, partnerID int32) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByPartner(ctx, partnerID)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.Name == "" {
		return &domain.MissingFieldError{Field: "name"}
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id, partnerID int32) error {
	return s.vehicleRepo.Delete(ctx, id, partnerID)
}
