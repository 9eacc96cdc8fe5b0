package postgres

import (
	"context"
	"database/sql"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, partner_id, last_name, first_name, birth_date, phone, email, address, passport, cin, license_number, license_issue_date, created_on, updated_on`

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (partner_id, last_name, first_name, birth_date, phone, email, address, passport, cin, license_number, license_issue_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.PartnerID, c.LastName, c.FirstName, c.BirthDate, c.Phone, c.Email, c.Address, c.Passport, c.CIN, c.LicenseNumber, c.LicenseIssueDate, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id, partnerID int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND partner_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, partnerID).Scan(&c.ID, &c.PartnerID, &c.LastName, &c.FirstName, &c.BirthDate, &c.Phone, &c.Email, &c.Address, &c.Passport, &c.CIN, &c.LicenseNumber, &c.LicenseIssueDate, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) ListByPartner(ctx context.Context, partnerID int32) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE partner_id = $1 ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepository) Search(ctx context.Context, partnerID int32, q string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE partner_id = $1
	          AND (last_name ILIKE '%' || $2 || '%' OR first_name ILIKE '%' || $2 || '%' OR cin ILIKE '%' || $2 || '%' OR passport ILIKE '%' || $2 || '%')
	          ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query, partnerID, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET last_name=$1, first_name=$2, birth_date=$3, phone=$4, email=$5, address=$6, passport=$7, cin=$8, license_number=$9, license_issue_date=$10, updated_on=$11
	          WHERE id=$12 AND partner_id=$13`
	_, err := r.db.ExecContext(ctx, query, c.LastName, c.FirstName, c.BirthDate, c.Phone, c.Email, c.Address, c.Passport, c.CIN, c.LicenseNumber, c.LicenseIssueDate, time.Now(), c.ID, c.PartnerID)
	return err
}

func (r *clientRepository) Delete(ctx context.Context, id, partnerID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id=$1 AND partner_id=$2`, id, partnerID)
	return err
}

func scanClients(rows *sql.Rows) ([]domain.Client, error) {
	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.PartnerID, &c.LastName, &c.FirstName, &c.BirthDate, &c.Phone, &c.Email, &c.Address, &c.Passport, &c.CIN, &c.LicenseNumber, &c.LicenseIssueDate, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
