package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

func transferVehicle() *domain.TransferVehicle {
	return &domain.TransferVehicle{
		ID:        4,
		PartnerID: 7,
		Title:     "Mercedes Vito",
		Capacity:  7,
		Routes: []domain.TransferRoute{
			{Pickup: "Airport RAK", Dropoff: "Marrakech Medina", OneWayPrice: 25, ReturnPrice: 20},
			{Pickup: "Airport RAK", Dropoff: "Agafay", OneWayPrice: 60},
		},
	}
}

func TestTransferService_QuoteFare(t *testing.T) {
	ctx := context.Background()
	transferRepo := new(MockTransferRepo)
	transferRepo.On("GetVehicleByID", ctx, int32(4)).Return(transferVehicle(), nil)

	svc := service.NewTransferService(transferRepo, new(MockEmailService))

	t.Run("Roundtrip", func(t *testing.T) {
		fare, err := svc.QuoteFare(ctx, 4, "Airport RAK", "Marrakech Medina", domain.TripTypeRoundtrip)
		require.NoError(t, err)
		assert.Equal(t, 45.0, fare)
	})

	t.Run("Unknown route", func(t *testing.T) {
		_, err := svc.QuoteFare(ctx, 4, "Airport RAK", "Essaouira", domain.TripTypeOneWay)
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "transfer route", nf.Entity)
	})
}

func TestTransferService_BookTransfer(t *testing.T) {
	ctx := context.Background()
	pickupTime := time.Date(2024, 7, 10, 14, 0, 0, 0, time.UTC)

	newBooking := func() *domain.TransferBooking {
		return &domain.TransferBooking{
			VehicleID:  4,
			Pickup:     "Airport RAK",
			Dropoff:    "Agafay",
			TripType:   domain.TripTypeRoundtrip,
			PickupTime: pickupTime,
			Passengers: 4,
			FirstName:  "Sara",
			LastName:   "El Idrissi",
			Email:      "sara@example.com",
		}
	}

	t.Run("Prices the booking and sends confirmation", func(t *testing.T) {
		transferRepo := new(MockTransferRepo)
		emailSvc := new(MockEmailService)
		transferRepo.On("GetVehicleByID", ctx, int32(4)).Return(transferVehicle(), nil)
		transferRepo.On("CreateBooking", ctx, mock.AnythingOfType("*domain.TransferBooking")).Return(nil)
		emailSvc.On("SendTransferConfirmation", ctx, "sara@example.com", "Sara El Idrissi", "Mercedes Vito", pickupTime, 120.0).Return(nil)

		svc := service.NewTransferService(transferRepo, emailSvc)
		booking := newBooking()
		err := svc.BookTransfer(ctx, booking)
		require.NoError(t, err)
		// no return price configured, so roundtrip doubles the one-way fare
		assert.Equal(t, 120.0, booking.Price)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Booking survives a failed confirmation email", func(t *testing.T) {
		transferRepo := new(MockTransferRepo)
		emailSvc := new(MockEmailService)
		transferRepo.On("GetVehicleByID", ctx, int32(4)).Return(transferVehicle(), nil)
		transferRepo.On("CreateBooking", ctx, mock.AnythingOfType("*domain.TransferBooking")).Return(nil)
		emailSvc.On("SendTransferConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid down"))

		svc := service.NewTransferService(transferRepo, emailSvc)
		err := svc.BookTransfer(ctx, newBooking())
		assert.NoError(t, err)
	})

	t.Run("Missing contact email", func(t *testing.T) {
		svc := service.NewTransferService(new(MockTransferRepo), new(MockEmailService))
		booking := newBooking()
		booking.Email = ""
		err := svc.BookTransfer(ctx, booking)

		var mf *domain.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "email", mf.Field)
	})
}
