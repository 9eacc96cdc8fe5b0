package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) error {
	if client.LastName == "" {
		return &domain.MissingFieldError{Field: "lastName"}
	}
	if client.FirstName == "" {
		return &domain.MissingFieldError{Field: "firstName"}
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id, partnerID int32) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "client", Key: fmt.Sprintf("%d", id)}
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, partnerID int32) ([]domain.Client, error) {
	return s.clientRepo.ListByPartner(ctx, partnerID)
}

func (s *clientService) SearchClients(ctx context.Context, partnerID int32, query string) ([]domain.Client, error) {
	if query == "" {
		return s.clientRepo.ListByPartner(ctx, partnerID)
	}
	return s.clientRepo.Search(ctx, partnerID, query)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	if client.LastName == "" {
		return &domain.MissingFieldError{Field: "lastName"}
	}
	if client.FirstName == "" {
		return &domain.MissingFieldError{Field: "firstName"}
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id, partnerID int32) error {
	return s.clientRepo.Delete(ctx, id, partnerID)
}
