package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/logger"
	"wegorent-backend/internal/repository"
	"wegorent-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	partnerRepo repository.PartnerRepository
	tokens      security.TokenManager
}

func NewAuthService(partnerRepo repository.PartnerRepository, tokens security.TokenManager) AuthService {
	return &authService{partnerRepo: partnerRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, companyName, email, phone, country, city, password string) (*domain.Partner, string, string, error) {
	logger.EnterMethod("AuthService.Signup", "email", email)

	if companyName == "" {
		return nil, "", "", &domain.MissingFieldError{Field: "companyName"}
	}
	if email == "" {
		return nil, "", "", &domain.MissingFieldError{Field: "email"}
	}
	if len(password) < 8 {
		return nil, "", "", errors.New("password must be at least 8 characters")
	}

	if existing, err := s.partnerRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", fmt.Errorf("email already registered: %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	partner := &domain.Partner{
		CompanyName:  companyName,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Country:      country,
		City:         city,
		Role:         domain.PartnerRoleAgency,
		Status:       domain.PartnerStatusActive,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		logger.ExitMethodWithError("AuthService.Signup", err)
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(partner)
	if err != nil {
		return nil, "", "", err
	}
	logger.ExitMethod("AuthService.Signup", "partner_id", partner.ID)
	return partner, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Partner, string, string, error) {
	logger.EnterMethod("AuthService.Login", "email", email)

	partner, err := s.partnerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if partner.Status == domain.PartnerStatusSuspended {
		return nil, "", "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(partner.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(partner)
	if err != nil {
		return nil, "", "", err
	}
	logger.ExitMethod("AuthService.Login", "partner_id", partner.ID)
	return partner, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	partner, err := s.partnerRepo.GetByID(ctx, claims.PartnerID)
	if err != nil {
		return "", "", err
	}
	if partner.Status == domain.PartnerStatusSuspended {
		return "", "", domain.ErrUnauthorized
	}
	return s.issueTokens(partner)
}

func (s *authService) GetProfile(ctx context.Context, partnerID int32) (*domain.Partner, error) {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "partner", Key: fmt.Sprintf("%d", partnerID)}
		}
		return nil, err
	}
	return partner, nil
}

func (s *authService) UpdateProfile(ctx context.Context, partner *domain.Partner) error {
	if partner.CompanyName == "" {
		return &domain.MissingFieldError{Field: "companyName"}
	}
	return s.partnerRepo.Update(ctx, partner)
}

func (s *authService) issueTokens(partner *domain.Partner) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(partner.ID, partner.Email, string(partner.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(partner.ID, partner.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
