package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wegorent-backend/internal/domain"
)

// MockPartnerRepo
type MockPartnerRepo struct {
	mock.Mock
}

func (m *MockPartnerRepo) Create(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerRepo) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) GetByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) Update(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id, partnerID int32) (*domain.Client, error) {
	args := m.Called(ctx, id, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) ListByPartner(ctx context.Context, partnerID int32) ([]domain.Client, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Search(ctx context.Context, partnerID int32, query string) ([]domain.Client, error) {
	args := m.Called(ctx, partnerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id, partnerID int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByPartner(ctx context.Context, partnerID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListWithInsuranceEnding(ctx context.Context, from, to time.Time) ([]domain.Vehicle, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListWithUnpaidRoadTax(ctx context.Context, year int) ([]domain.Vehicle, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id, partnerID int32) (*domain.Contract, error) {
	args := m.Called(ctx, id, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, partnerID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) Update(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error {
	args := m.Called(ctx, id, partnerID, status)
	return args.Error(0)
}
func (m *MockContractRepo) Delete(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}
func (m *MockContractRepo) ListDueBack(ctx context.Context, from, to time.Time) ([]domain.Contract, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockSmartContractRepo
type MockSmartContractRepo struct {
	mock.Mock
}

func (m *MockSmartContractRepo) Create(ctx context.Context, contract *domain.SmartContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockSmartContractRepo) GetByID(ctx context.Context, id, partnerID int32) (*domain.SmartContract, error) {
	args := m.Called(ctx, id, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SmartContract), args.Error(1)
}
func (m *MockSmartContractRepo) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.SmartContract, int32, error) {
	args := m.Called(ctx, partnerID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.SmartContract), args.Get(1).(int32), args.Error(2)
}
func (m *MockSmartContractRepo) Update(ctx context.Context, contract *domain.SmartContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockSmartContractRepo) UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error {
	args := m.Called(ctx, id, partnerID, status)
	return args.Error(0)
}
func (m *MockSmartContractRepo) Delete(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}

// MockBlacklistRepo
type MockBlacklistRepo struct {
	mock.Mock
}

func (m *MockBlacklistRepo) Create(ctx context.Context, entry *domain.BlacklistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockBlacklistRepo) ListByPartner(ctx context.Context, partnerID int32) ([]domain.BlacklistEntry, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlacklistEntry), args.Error(1)
}
func (m *MockBlacklistRepo) FindActiveMatch(ctx context.Context, partnerID int32, cin, passport string) (*domain.BlacklistEntry, error) {
	args := m.Called(ctx, partnerID, cin, passport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlacklistEntry), args.Error(1)
}
func (m *MockBlacklistRepo) Deactivate(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}

// MockTransferRepo
type MockTransferRepo struct {
	mock.Mock
}

func (m *MockTransferRepo) CreateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockTransferRepo) GetVehicleByID(ctx context.Context, id int32) (*domain.TransferVehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferVehicle), args.Error(1)
}
func (m *MockTransferRepo) ListVehicles(ctx context.Context, partnerID int32) ([]domain.TransferVehicle, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferVehicle), args.Error(1)
}
func (m *MockTransferRepo) UpdateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockTransferRepo) DeleteVehicle(ctx context.Context, id, partnerID int32) error {
	args := m.Called(ctx, id, partnerID)
	return args.Error(0)
}
func (m *MockTransferRepo) CreateBooking(ctx context.Context, booking *domain.TransferBooking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockTransferRepo) ListBookings(ctx context.Context, partnerID int32) ([]domain.TransferBooking, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferBooking), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, toEmail, toName, vehicleName string, endDate time.Time) error {
	args := m.Called(ctx, toEmail, toName, vehicleName, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendInsuranceExpiryReminder(ctx context.Context, toEmail, toName, vehicleName string, insuranceEnd time.Time) error {
	args := m.Called(ctx, toEmail, toName, vehicleName, insuranceEnd)
	return args.Error(0)
}
func (m *MockEmailService) SendRoadTaxNotice(ctx context.Context, toEmail, toName, vehicleName string, year int) error {
	args := m.Called(ctx, toEmail, toName, vehicleName, year)
	return args.Error(0)
}
func (m *MockEmailService) SendTransferConfirmation(ctx context.Context, toEmail, toName, vehicleTitle string, pickupTime time.Time, price float64) error {
	args := m.Called(ctx, toEmail, toName, vehicleTitle, pickupTime, price)
	return args.Error(0)
}
