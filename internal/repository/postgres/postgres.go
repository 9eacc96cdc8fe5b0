package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"wegorent-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.PartnerRepository
	repository.ClientRepository
	repository.VehicleRepository
	repository.ContractRepository
	repository.SmartContractRepository
	repository.BlacklistRepository
	repository.TransferRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		PartnerRepository:       NewPartnerRepository(db),
		ClientRepository:        NewClientRepository(db),
		VehicleRepository:       NewVehicleRepository(db),
		ContractRepository:      NewContractRepository(db),
		SmartContractRepository: NewSmartContractRepository(db),
		BlacklistRepository:     NewBlacklistRepository(db),
		TransferRepository:      NewTransferRepository(db),
	}
}
