package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

func fixedBuilder() *contract.Builder {
	return &contract.Builder{
		Now:       func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) },
		NewNumber: func(prefix string) string { return prefix + "-TEST-0001" },
	}
}

func servicePartner() *domain.Partner {
	return &domain.Partner{
		ID:          7,
		CompanyName: "Atlas Cars",
		Email:       "contact@atlascars.ma",
		Role:        domain.PartnerRoleAgency,
		Status:      domain.PartnerStatusActive,
	}
}

func serviceClients() []domain.Client {
	return []domain.Client{{
		ID:        3,
		PartnerID: 7,
		LastName:  "Alaoui",
		FirstName: "Karim",
		CIN:       "AB123456",
		Passport:  "P9988776",
	}}
}

func serviceVehicles() []domain.Vehicle {
	return []domain.Vehicle{{
		ID:          12,
		PartnerID:   7,
		Name:        "Dacia Logan",
		Matricule:   "12345-A-40",
		PricePerDay: 250,
		Available:   true,
	}}
}

func serviceDraft() contract.Draft {
	return contract.Draft{
		ClientID:      3,
		VehicleID:     12,
		StartDateTime: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC),
		StartLocation: "Agence Marrakech",
		EndLocation:   "Aeroport RAK",
	}
}

func TestContractService_CreateContract(t *testing.T) {
	ctx := context.Background()

	newService := func(blacklistEntry *domain.BlacklistEntry) (service.ContractService, *MockContractRepo) {
		contractRepo := new(MockContractRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		partnerRepo := new(MockPartnerRepo)
		blacklistRepo := new(MockBlacklistRepo)

		partnerRepo.On("GetByID", ctx, int32(7)).Return(servicePartner(), nil)
		clientRepo.On("ListByPartner", ctx, int32(7)).Return(serviceClients(), nil)
		vehicleRepo.On("ListByPartner", ctx, int32(7)).Return(serviceVehicles(), nil)
		blacklistRepo.On("FindActiveMatch", ctx, int32(7), "AB123456", "P9988776").Return(blacklistEntry, nil)

		svc := service.NewContractService(contractRepo, clientRepo, vehicleRepo, partnerRepo, blacklistRepo, fixedBuilder())
		return svc, contractRepo
	}

	t.Run("Success", func(t *testing.T) {
		svc, contractRepo := newService(nil)
		contractRepo.On("Create", ctx, mock.AnythingOfType("*domain.Contract")).Return(nil)

		c, err := svc.CreateContract(ctx, 7, serviceDraft())
		require.NoError(t, err)
		assert.Equal(t, "CTR-TEST-0001", c.ContractNumber)
		assert.Equal(t, "Alaoui", c.ClientInfo.LastName)
		assert.Equal(t, int32(2), c.RentalInfo.RentalDays)
		assert.Equal(t, 500.0, c.RentalInfo.TotalPrice)
		contractRepo.AssertExpectations(t)
	})

	t.Run("Blacklisted client rejected before persistence", func(t *testing.T) {
		entry := &domain.BlacklistEntry{ID: 5, PartnerID: 7, CIN: "AB123456", Reason: "unpaid damages", Active: true}
		svc, contractRepo := newService(entry)

		c, err := svc.CreateContract(ctx, 7, serviceDraft())
		assert.Nil(t, c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBlacklisted)
		assert.Contains(t, err.Error(), "unpaid damages")
		contractRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing field surfaces from the builder", func(t *testing.T) {
		svc, contractRepo := newService(nil)

		d := serviceDraft()
		d.StartLocation = ""
		_, err := svc.CreateContract(ctx, 7, d)

		var mf *domain.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "startLocation", mf.Field)
		contractRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		svc, _ := newService(nil)

		d := serviceDraft()
		d.VehicleID = 99
		_, err := svc.CreateContract(ctx, 7, d)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "vehicle", nf.Entity)
	})
}

func TestContractService_UpdateContractStatus(t *testing.T) {
	ctx := context.Background()
	contractRepo := new(MockContractRepo)
	svc := service.NewContractService(contractRepo, new(MockClientRepo), new(MockVehicleRepo), new(MockPartnerRepo), new(MockBlacklistRepo), fixedBuilder())

	t.Run("Success", func(t *testing.T) {
		contractRepo.On("UpdateStatus", ctx, int32(1), int32(7), domain.ContractStatusCompleted).Return(nil)
		err := svc.UpdateContractStatus(ctx, 1, 7, "completed")
		assert.NoError(t, err)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		err := svc.UpdateContractStatus(ctx, 1, 7, "archived")
		assert.Error(t, err)
		contractRepo.AssertNotCalled(t, "UpdateStatus", ctx, int32(1), int32(7), domain.ContractStatus("archived"))
	})
}

func TestSmartContractService_CreateSmartContract(t *testing.T) {
	ctx := context.Background()

	newService := func(driverEntry *domain.BlacklistEntry) (service.SmartContractService, *MockSmartContractRepo) {
		smartRepo := new(MockSmartContractRepo)
		clientRepo := new(MockClientRepo)
		vehicleRepo := new(MockVehicleRepo)
		partnerRepo := new(MockPartnerRepo)
		blacklistRepo := new(MockBlacklistRepo)

		partnerRepo.On("GetByID", ctx, int32(7)).Return(servicePartner(), nil)
		clientRepo.On("ListByPartner", ctx, int32(7)).Return(serviceClients(), nil)
		vehicleRepo.On("ListByPartner", ctx, int32(7)).Return(serviceVehicles(), nil)
		blacklistRepo.On("FindActiveMatch", ctx, int32(7), "AB123456", "P9988776").Return(nil, nil)
		blacklistRepo.On("FindActiveMatch", ctx, int32(7), "CD654321", "").Return(driverEntry, nil)

		svc := service.NewSmartContractService(smartRepo, clientRepo, vehicleRepo, partnerRepo, blacklistRepo, fixedBuilder())
		return svc, smartRepo
	}

	terms := contract.SmartTerms{
		TVA:           "40",
		StayTax:       "10",
		OtherTaxes:    "",
		PaymentMethod: domain.PaymentMethodCard,
		Driver:        &domain.DriverInfo{LastName: "Benani", FirstName: "Omar", CIN: "CD654321"},
	}

	t.Run("Success prices taxes through the shared pricer", func(t *testing.T) {
		svc, smartRepo := newService(nil)
		smartRepo.On("Create", ctx, mock.AnythingOfType("*domain.SmartContract")).Return(nil)

		sc, err := svc.CreateSmartContract(ctx, 7, serviceDraft(), terms)
		require.NoError(t, err)
		assert.Equal(t, "SMART-TEST-0001", sc.ContractNumber)
		// 2 days * 250 + 40 + 10
		assert.Equal(t, 550.0, sc.RentalInfo.TotalPrice)
		assert.Equal(t, domain.PaymentMethodCard, sc.PaymentMethod)
	})

	t.Run("Blacklisted driver rejected", func(t *testing.T) {
		entry := &domain.BlacklistEntry{ID: 9, PartnerID: 7, CIN: "CD654321", Reason: "fraud", Active: true}
		svc, smartRepo := newService(entry)

		_, err := svc.CreateSmartContract(ctx, 7, serviceDraft(), terms)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBlacklisted)
		smartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
