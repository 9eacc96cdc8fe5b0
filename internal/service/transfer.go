package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/logger"
	"wegorent-backend/internal/pricing"
	"wegorent-backend/internal/repository"
)

type transferService struct {
	transferRepo repository.TransferRepository
	emailSvc     EmailService
}

func NewTransferService(transferRepo repository.TransferRepository, emailSvc EmailService) TransferService {
	return &transferService{transferRepo: transferRepo, emailSvc: emailSvc}
}

func (s *transferService) CreateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error {
	if vehicle.Title == "" {
		return &domain.MissingFieldError{Field: "title"}
	}
	return s.transferRepo.CreateVehicle(ctx, vehicle)
}

func (s *transferService) ListVehicles(ctx context.Context, partnerID int32) ([]domain.TransferVehicle, error) {
	return s.transferRepo.ListVehicles(ctx, partnerID)
}

func (s *transferService) UpdateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error {
	if vehicle.Title == "" {
		return &domain.MissingFieldError{Field: "title"}
	}
	return s.transferRepo.UpdateVehicle(ctx, vehicle)
}

func (s *transferService) DeleteVehicle(ctx context.Context, id, partnerID int32) error {
	return s.transferRepo.DeleteVehicle(ctx, id, partnerID)
}

func (s *transferService) QuoteFare(ctx context.Context, vehicleID int32, pickup, dropoff string, trip domain.TripType) (float64, error) {
	vehicle, err := s.getVehicle(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	fare, ok := pricing.TransferFare(*vehicle, pickup, dropoff, trip)
	if !ok {
		return 0, &domain.NotFoundError{Entity: "transfer route", Key: fmt.Sprintf("%s -> %s", pickup, dropoff)}
	}
	return fare, nil
}

func (s *transferService) BookTransfer(ctx context.Context, booking *domain.TransferBooking) error {
	if booking.LastName == "" {
		return &domain.MissingFieldError{Field: "lastName"}
	}
	if booking.Email == "" {
		return &domain.MissingFieldError{Field: "email"}
	}
	if booking.PickupTime.IsZero() {
		return &domain.MissingFieldError{Field: "pickupTime"}
	}
	if booking.TripType != domain.TripTypeRoundtrip {
		booking.TripType = domain.TripTypeOneWay
	}

	vehicle, err := s.getVehicle(ctx, booking.VehicleID)
	if err != nil {
		return err
	}

	fare, ok := pricing.TransferFare(*vehicle, booking.Pickup, booking.Dropoff, booking.TripType)
	if !ok {
		return &domain.NotFoundError{Entity: "transfer route", Key: fmt.Sprintf("%s -> %s", booking.Pickup, booking.Dropoff)}
	}
	booking.Price = fare

	if err := s.transferRepo.CreateBooking(ctx, booking); err != nil {
		return err
	}

	// Confirmation email is best effort; the booking stands either way.
	name := booking.FirstName + " " + booking.LastName
	if err := s.emailSvc.SendTransferConfirmation(ctx, booking.Email, name, vehicle.Title, booking.PickupTime, fare); err != nil {
		logger.Warn("failed to send transfer confirmation", "booking_id", booking.ID, "error", err)
	}
	return nil
}

func (s *transferService) ListBookings(ctx context.Context, partnerID int32) ([]domain.TransferBooking, error) {
	return s.transferRepo.ListBookings(ctx, partnerID)
}

func (s *transferService) getVehicle(ctx context.Context, id int32) (*domain.TransferVehicle, error) {
	vehicle, err := s.transferRepo.GetVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "transfer vehicle", Key: fmt.Sprintf("%d", id)}
		}
		return nil, err
	}
	return vehicle, nil
}
