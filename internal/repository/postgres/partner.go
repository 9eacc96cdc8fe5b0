package postgres

import (
	"context"
	"database/sql"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `INSERT INTO partners (company_name, email, password_hash, phone, logo_url, country, city, role, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.CompanyName, p.Email, p.PasswordHash, p.Phone, p.LogoURL, p.Country, p.City, p.Role, p.Status, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *partnerRepository) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	p := &domain.Partner{}
	query := `SELECT id, company_name, email, password_hash, phone, logo_url, country, city, role, status, created_on, updated_on FROM partners WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CompanyName, &p.Email, &p.PasswordHash, &p.Phone, &p.LogoURL, &p.Country, &p.City, &p.Role, &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	p := &domain.Partner{}
	query := `SELECT id, company_name, email, password_hash, phone, logo_url, country, city, role, status, created_on, updated_on FROM partners WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&p.ID, &p.CompanyName, &p.Email, &p.PasswordHash, &p.Phone, &p.LogoURL, &p.Country, &p.City, &p.Role, &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	query := `UPDATE partners SET company_name=$1, phone=$2, logo_url=$3, country=$4, city=$5, status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.CompanyName, p.Phone, p.LogoURL, p.Country, p.City, p.Status, time.Now(), p.ID)
	return err
}
