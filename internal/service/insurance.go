package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type insuranceService struct {
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

func NewInsuranceService(vehicleRepo repository.VehicleRepository) InsuranceService {
	return &insuranceService{vehicleRepo: vehicleRepo, now: time.Now}
}

func (s *insuranceService) ListStatuses(ctx context.Context, partnerID int32) ([]VehicleInsurance, error) {
	vehicles, err := s.vehicleRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	statuses := make([]VehicleInsurance, 0, len(vehicles))
	for _, v := range vehicles {
		statuses = append(statuses, VehicleInsurance{
			Vehicle: v,
			Status:  v.InsuranceStatusAt(now),
		})
	}
	return statuses, nil
}

func (s *insuranceService) UpdateWindow(ctx context.Context, partnerID, vehicleID int32, start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("insurance end %s is before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "vehicle", Key: fmt.Sprintf("%d", vehicleID)}
		}
		return err
	}

	vehicle.InsuranceStart = start
	vehicle.InsuranceEnd = end
	return s.vehicleRepo.Update(ctx, vehicle)
}
