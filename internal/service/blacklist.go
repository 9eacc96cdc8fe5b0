package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type blacklistService struct {
	blacklistRepo repository.BlacklistRepository
	clientRepo    repository.ClientRepository
}

func NewBlacklistService(blacklistRepo repository.BlacklistRepository, clientRepo repository.ClientRepository) BlacklistService {
	return &blacklistService{blacklistRepo: blacklistRepo, clientRepo: clientRepo}
}

func (s *blacklistService) AddEntry(ctx context.Context, entry *domain.BlacklistEntry) error {
	// An entry flagging a directory client inherits that client's papers so
	// future contracts match even when typed in by hand.
	if entry.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *entry.ClientID, entry.PartnerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &domain.NotFoundError{Entity: "client", Key: fmt.Sprintf("%d", *entry.ClientID)}
			}
			return err
		}
		if entry.CIN == "" {
			entry.CIN = client.CIN
		}
		if entry.Passport == "" {
			entry.Passport = client.Passport
		}
	}
	if entry.CIN == "" && entry.Passport == "" {
		return &domain.MissingFieldError{Field: "cin"}
	}
	entry.Active = true
	return s.blacklistRepo.Create(ctx, entry)
}

func (s *blacklistService) ListEntries(ctx context.Context, partnerID int32) ([]domain.BlacklistEntry, error) {
	return s.blacklistRepo.ListByPartner(ctx, partnerID)
}

func (s *blacklistService) CheckPerson(ctx context.Context, partnerID int32, cin, passport string) (*domain.BlacklistEntry, error) {
	if cin == "" && passport == "" {
		return nil, nil
	}
	return s.blacklistRepo.FindActiveMatch(ctx, partnerID, cin, passport)
}

func (s *blacklistService) RemoveEntry(ctx context.Context, id, partnerID int32) error {
	err := s.blacklistRepo.Deactivate(ctx, id, partnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "blacklist entry", Key: fmt.Sprintf("%d", id)}
	}
	return err
}
