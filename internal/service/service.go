package service

import (
	"context"
	"time"

	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, companyName, email, phone, country, city, password string) (*domain.Partner, string, string, error) // partner, access, refresh
	Login(ctx context.Context, email, password string) (*domain.Partner, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetProfile(ctx context.Context, partnerID int32) (*domain.Partner, error)
	UpdateProfile(ctx context.Context, partner *domain.Partner) error
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id, partnerID int32) (*domain.Client, error)
	ListClients(ctx context.Context, partnerID int32) ([]domain.Client, error)
	SearchClients(ctx context.Context, partnerID int32, query string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, id, partnerID int32) error
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id, partnerID int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, partnerID int32) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id, partnerID int32) error
}

type ContractService interface {
	CreateContract(ctx context.Context, partnerID int32, draft contract.Draft) (*domain.Contract, error)
	GetContract(ctx context.Context, id, partnerID int32) (*domain.Contract, error)
	ListContracts(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	UpdateContract(ctx context.Context, id, partnerID int32, draft contract.Draft) (*domain.Contract, error)
	UpdateContractStatus(ctx context.Context, id, partnerID int32, status string) error
	DeleteContract(ctx context.Context, id, partnerID int32) error
}

type SmartContractService interface {
	CreateSmartContract(ctx context.Context, partnerID int32, draft contract.Draft, terms contract.SmartTerms) (*domain.SmartContract, error)
	GetSmartContract(ctx context.Context, id, partnerID int32) (*domain.SmartContract, error)
	ListSmartContracts(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.SmartContract, int32, error)
	UpdateSmartContract(ctx context.Context, id, partnerID int32, draft contract.Draft, terms contract.SmartTerms) (*domain.SmartContract, error)
	UpdateSmartContractStatus(ctx context.Context, id, partnerID int32, status string) error
	DeleteSmartContract(ctx context.Context, id, partnerID int32) error
}

type BlacklistService interface {
	AddEntry(ctx context.Context, entry *domain.BlacklistEntry) error
	ListEntries(ctx context.Context, partnerID int32) ([]domain.BlacklistEntry, error)
	// CheckPerson returns the matching active entry, or nil when clear.
	CheckPerson(ctx context.Context, partnerID int32, cin, passport string) (*domain.BlacklistEntry, error)
	RemoveEntry(ctx context.Context, id, partnerID int32) error
}

type InsuranceService interface {
	// ListStatuses classifies every vehicle of the partner by its insurance
	// window relative to now.
	ListStatuses(ctx context.Context, partnerID int32) ([]VehicleInsurance, error)
	UpdateWindow(ctx context.Context, partnerID, vehicleID int32, start, end *time.Time) error
}

// VehicleInsurance pairs a vehicle with its computed insurance status.
type VehicleInsurance struct {
	Vehicle domain.Vehicle         `json:"vehicle"`
	Status  domain.InsuranceStatus `json:"status"`
}

type TransferService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error
	ListVehicles(ctx context.Context, partnerID int32) ([]domain.TransferVehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error
	DeleteVehicle(ctx context.Context, id, partnerID int32) error

	// QuoteFare prices a pickup/dropoff pair against the vehicle's route
	// table without creating a booking.
	QuoteFare(ctx context.Context, vehicleID int32, pickup, dropoff string, trip domain.TripType) (float64, error)
	BookTransfer(ctx context.Context, booking *domain.TransferBooking) error
	ListBookings(ctx context.Context, partnerID int32) ([]domain.TransferBooking, error)
}

type EmailService interface {
	SendReturnReminder(ctx context.Context, toEmail, toName, vehicleName string, endDate time.Time) error
	SendInsuranceExpiryReminder(ctx context.Context, toEmail, toName, vehicleName string, insuranceEnd time.Time) error
	SendRoadTaxNotice(ctx context.Context, toEmail, toName, vehicleName string, year int) error
	SendTransferConfirmation(ctx context.Context, toEmail, toName, vehicleTitle string, pickupTime time.Time, price float64) error
}
