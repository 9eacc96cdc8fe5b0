package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/logger"
	"wegorent-backend/internal/repository"
)

type smartContractService struct {
	smartRepo     repository.SmartContractRepository
	clientRepo    repository.ClientRepository
	vehicleRepo   repository.VehicleRepository
	partnerRepo   repository.PartnerRepository
	blacklistRepo repository.BlacklistRepository
	builder       *contract.Builder
}

func NewSmartContractService(
	smartRepo repository.SmartContractRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	partnerRepo repository.PartnerRepository,
	blacklistRepo repository.BlacklistRepository,
	builder *contract.Builder,
) SmartContractService {
	return &smartContractService{
		smartRepo:     smartRepo,
		clientRepo:    clientRepo,
		vehicleRepo:   vehicleRepo,
		partnerRepo:   partnerRepo,
		blacklistRepo: blacklistRepo,
		builder:       builder,
	}
}

func (s *smartContractService) CreateSmartContract(ctx context.Context, partnerID int32, draft contract.Draft, terms contract.SmartTerms) (*domain.SmartContract, error) {
	logger.EnterMethod("SmartContractService.CreateSmartContract", "partner_id", partnerID)

	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if err := s.screen(ctx, partnerID, draft, terms, clients); err != nil {
		logger.ExitMethodWithError("SmartContractService.CreateSmartContract", err)
		return nil, err
	}

	built, err := s.builder.BuildSmart(draft, terms, clients, vehicles, *partner)
	if err != nil {
		logger.ExitMethodWithError("SmartContractService.CreateSmartContract", err)
		return nil, err
	}

	if err := s.smartRepo.Create(ctx, built); err != nil {
		logger.ExitMethodWithError("SmartContractService.CreateSmartContract", err)
		return nil, err
	}
	logger.ExitMethod("SmartContractService.CreateSmartContract", "contract_id", built.ID, "contract_number", built.ContractNumber)
	return built, nil
}

func (s *smartContractService) GetSmartContract(ctx context.Context, id, partnerID int32) (*domain.SmartContract, error) {
	sc, err := s.smartRepo.GetByID(ctx, id, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "smart contract", Key: fmt.Sprintf("%d", id)}
		}
		return nil, err
	}
	return sc, nil
}

func (s *smartContractService) ListSmartContracts(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.SmartContract, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.smartRepo.ListByPartner(ctx, partnerID, status, page, pageSize)
}

func (s *smartContractService) UpdateSmartContract(ctx context.Context, id, partnerID int32, draft contract.Draft, terms contract.SmartTerms) (*domain.SmartContract, error) {
	existing, err := s.GetSmartContract(ctx, id, partnerID)
	if err != nil {
		return nil, err
	}

	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if err := s.screen(ctx, partnerID, draft, terms, clients); err != nil {
		return nil, err
	}

	built, err := s.builder.BuildSmart(draft, terms, clients, vehicles, *partner)
	if err != nil {
		return nil, err
	}
	built.ID = existing.ID
	built.ContractNumber = existing.ContractNumber
	built.Metadata = existing.Metadata

	if err := s.smartRepo.Update(ctx, built); err != nil {
		return nil, err
	}
	return built, nil
}

func (s *smartContractService) DeleteSmartContract(ctx context.Context, id, partnerID int32) error {
	return s.smartRepo.Delete(ctx, id, partnerID)
}

func (s *smartContractService) UpdateSmartContractStatus(ctx context.Context, id, partnerID int32, status string) error {
	st := domain.ContractStatus(status)
	if !domain.ValidContractStatus(st) {
		return fmt.Errorf("unknown contract status: %q", status)
	}
	err := s.smartRepo.UpdateStatus(ctx, id, partnerID, st)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "smart contract", Key: fmt.Sprintf("%d", id)}
	}
	return err
}

// screen checks both the renter and the designated driver against the
// blacklist before the contract is assembled.
func (s *smartContractService) screen(ctx context.Context, partnerID int32, draft contract.Draft, terms contract.SmartTerms, clients []domain.Client) error {
	var cin, passport string
	for _, c := range clients {
		if c.ID == draft.ClientID {
			cin, passport = c.CIN, c.Passport
			break
		}
	}
	if err := s.checkOne(ctx, partnerID, cin, passport); err != nil {
		return err
	}
	if terms.Driver != nil {
		return s.checkOne(ctx, partnerID, terms.Driver.CIN, "")
	}
	return nil
}

func (s *smartContractService) checkOne(ctx context.Context, partnerID int32, cin, passport string) error {
	if cin == "" && passport == "" {
		return nil
	}
	entry, err := s.blacklistRepo.FindActiveMatch(ctx, partnerID, cin, passport)
	if err != nil {
		return err
	}
	if entry != nil {
		return fmt.Errorf("%w: %s", domain.ErrBlacklisted, entry.Reason)
	}
	return nil
}
