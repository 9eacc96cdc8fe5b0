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

type contractService struct {
	contractRepo  repository.ContractRepository
	clientRepo    repository.ClientRepository
	vehicleRepo   repository.VehicleRepository
	partnerRepo   repository.PartnerRepository
	blacklistRepo repository.BlacklistRepository
	builder       *contract.Builder
}

func NewContractService(
	contractRepo repository.ContractRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	partnerRepo repository.PartnerRepository,
	blacklistRepo repository.BlacklistRepository,
	builder *contract.Builder,
) ContractService {
	return &contractService{
		contractRepo:  contractRepo,
		clientRepo:    clientRepo,
		vehicleRepo:   vehicleRepo,
		partnerRepo:   partnerRepo,
		blacklistRepo: blacklistRepo,
		builder:       builder,
	}
}

func (s *contractService) CreateContract(ctx context.Context, partnerID int32, draft contract.Draft) (*domain.Contract, error) {
	logger.EnterMethod("ContractService.CreateContract", "partner_id", partnerID)

	built, err := s.buildContract(ctx, partnerID, draft)
	if err != nil {
		logger.ExitMethodWithError("ContractService.CreateContract", err)
		return nil, err
	}

	if err := s.contractRepo.Create(ctx, built); err != nil {
		logger.ExitMethodWithError("ContractService.CreateContract", err)
		return nil, err
	}
	logger.ExitMethod("ContractService.CreateContract", "contract_id", built.ID, "contract_number", built.ContractNumber)
	return built, nil
}

func (s *contractService) GetContract(ctx context.Context, id, partnerID int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "contract", Key: fmt.Sprintf("%d", id)}
		}
		return nil, err
	}
	return c, nil
}

func (s *contractService) ListContracts(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.contractRepo.ListByPartner(ctx, partnerID, status, page, pageSize)
}

// UpdateContract rebuilds the whole aggregate from the new draft, so edited
// contracts re-snapshot the current client and vehicle state. The contract
// number and creation metadata survive the rebuild.
func (s *contractService) UpdateContract(ctx context.Context, id, partnerID int32, draft contract.Draft) (*domain.Contract, error) {
	existing, err := s.GetContract(ctx, id, partnerID)
	if err != nil {
		return nil, err
	}

	built, err := s.buildContract(ctx, partnerID, draft)
	if err != nil {
		return nil, err
	}
	built.ID = existing.ID
	built.ContractNumber = existing.ContractNumber
	built.Metadata = existing.Metadata

	if err := s.contractRepo.Update(ctx, built); err != nil {
		return nil, err
	}
	return built, nil
}

func (s *contractService) UpdateContractStatus(ctx context.Context, id, partnerID int32, status string) error {
	st := domain.ContractStatus(status)
	if !domain.ValidContractStatus(st) {
		return fmt.Errorf("unknown contract status: %q", status)
	}
	err := s.contractRepo.UpdateStatus(ctx, id, partnerID, st)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "contract", Key: fmt.Sprintf("%d", id)}
	}
	return err
}

func (s *contractService) DeleteContract(ctx context.Context, id, partnerID int32) error {
	return s.contractRepo.Delete(ctx, id, partnerID)
}

func (s *contractService) buildContract(ctx context.Context, partnerID int32, draft contract.Draft) (*domain.Contract, error) {
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

	if err := s.screenClient(ctx, partnerID, draft, clients); err != nil {
		return nil, err
	}

	return s.builder.Build(draft, clients, vehicles, *partner)
}

// screenClient checks the renter's identity papers against the blacklist
// before any contract is assembled.
func (s *contractService) screenClient(ctx context.Context, partnerID int32, draft contract.Draft, clients []domain.Client) error {
	cin, passport := draft.Client.CIN, draft.Client.Passport
	if draft.ClientID != 0 {
		for _, c := range clients {
			if c.ID == draft.ClientID {
				cin, passport = c.CIN, c.Passport
				break
			}
		}
	}
	if cin == "" && passport == "" {
		return nil
	}

	entry, err := s.blacklistRepo.FindActiveMatch(ctx, partnerID, cin, passport)
	if err != nil {
		return err
	}
	if entry != nil {
		logger.Warn("blacklisted client rejected", "partner_id", partnerID, "reason", entry.Reason)
		return fmt.Errorf("%w: %s", domain.ErrBlacklisted, entry.Reason)
	}
	return nil
}
