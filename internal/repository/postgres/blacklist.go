package postgres

import (
	"context"
	"database/sql"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type blacklistRepository struct {
	db *sql.DB
}

func NewBlacklistRepository(db *sql.DB) repository.BlacklistRepository {
	return &blacklistRepository{db: db}
}

func (r *blacklistRepository) Create(ctx context.Context, e *domain.BlacklistEntry) error {
	query := `INSERT INTO blacklist (partner_id, client_id, cin, passport, reason, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.PartnerID, e.ClientID, e.CIN, e.Passport, e.Reason, e.Active, time.Now()).Scan(&e.ID)
}

func (r *blacklistRepository) ListByPartner(ctx context.Context, partnerID int32) ([]domain.BlacklistEntry, error) {
	query := `SELECT id, partner_id, client_id, cin, passport, reason, active, created_on FROM blacklist WHERE partner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.BlacklistEntry
	for rows.Next() {
		var e domain.BlacklistEntry
		if err := rows.Scan(&e.ID, &e.PartnerID, &e.ClientID, &e.CIN, &e.Passport, &e.Reason, &e.Active, &e.CreatedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *blacklistRepository) FindActiveMatch(ctx context.Context, partnerID int32, cin, passport string) (*domain.BlacklistEntry, error) {
	// Empty identifiers never match; a person without papers on file is not
	// the same as a blacklisted person with blank papers.
	query := `SELECT id, partner_id, client_id, cin, passport, reason, active, created_on FROM blacklist
	          WHERE partner_id = $1 AND active = true
	          AND ((cin <> '' AND cin = $2) OR (passport <> '' AND passport = $3))
	          LIMIT 1`
	e := &domain.BlacklistEntry{}
	err := r.db.QueryRowContext(ctx, query, partnerID, cin, passport).Scan(&e.ID, &e.PartnerID, &e.ClientID, &e.CIN, &e.Passport, &e.Reason, &e.Active, &e.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *blacklistRepository) Deactivate(ctx context.Context, id, partnerID int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE blacklist SET active = false WHERE id = $1 AND partner_id = $2`, id, partnerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
