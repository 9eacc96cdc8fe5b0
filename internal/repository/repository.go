package repository

import (
	"context"
	"time"

	"wegorent-backend/internal/domain"
)

type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	GetByID(ctx context.Context, id int32) (*domain.Partner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Partner, error)
	Update(ctx context.Context, partner *domain.Partner) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id, partnerID int32) (*domain.Client, error)
	ListByPartner(ctx context.Context, partnerID int32) ([]domain.Client, error)
	Search(ctx context.Context, partnerID int32, query string) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id, partnerID int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id, partnerID int32) (*domain.Vehicle, error)
	ListByPartner(ctx context.Context, partnerID int32) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id, partnerID int32) error

	// ListWithInsuranceEnding returns vehicles whose insurance end date falls
	// inside [from, to), across all partners. Used by the reminder jobs.
	ListWithInsuranceEnding(ctx context.Context, from, to time.Time) ([]domain.Vehicle, error)

	// ListWithUnpaidRoadTax returns vehicles whose road tax flag for the
	// given fiscal year (2026 through 2029) is unset, across all partners.
	ListWithUnpaidRoadTax(ctx context.Context, year int) ([]domain.Vehicle, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id, partnerID int32) (*domain.Contract, error)
	ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	Update(ctx context.Context, contract *domain.Contract) error
	UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error
	Delete(ctx context.Context, id, partnerID int32) error

	// ListDueBack returns active contracts whose rental end falls inside
	// [from, to), across all partners. Used by the return reminder job.
	ListDueBack(ctx context.Context, from, to time.Time) ([]domain.Contract, error)
}

type SmartContractRepository interface {
	Create(ctx context.Context, contract *domain.SmartContract) error
	GetByID(ctx context.Context, id, partnerID int32) (*domain.SmartContract, error)
	ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.SmartContract, int32, error)
	Update(ctx context.Context, contract *domain.SmartContract) error
	UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error
	Delete(ctx context.Context, id, partnerID int32) error
}

type BlacklistRepository interface {
	Create(ctx context.Context, entry *domain.BlacklistEntry) error
	ListByPartner(ctx context.Context, partnerID int32) ([]domain.BlacklistEntry, error)
	// FindActiveMatch returns the first active entry whose CIN or passport
	// matches either supplied value, or nil when the person is clear.
	FindActiveMatch(ctx context.Context, partnerID int32, cin, passport string) (*domain.BlacklistEntry, error)
	Deactivate(ctx context.Context, id, partnerID int32) error
}

type TransferRepository interface {
	CreateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error
	GetVehicleByID(ctx context.Context, id int32) (*domain.TransferVehicle, error)
	ListVehicles(ctx context.Context, partnerID int32) ([]domain.TransferVehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.TransferVehicle) error
	DeleteVehicle(ctx context.Context, id, partnerID int32) error

	CreateBooking(ctx context.Context, booking *domain.TransferBooking) error
	ListBookings(ctx context.Context, partnerID int32) ([]domain.TransferBooking, error)
}
