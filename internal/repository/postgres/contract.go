package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

// Contract snapshots are stored as jsonb documents. The rental period is
// additionally duplicated into plain columns so the reminder jobs can range
// over it without unpacking the document.
type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, contract_number, partner_id, partner_info, client_info, second_driver_info, vehicle_info, rental_info, status, created_by, created_at, updated_on`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	partnerInfo, clientInfo, secondDriver, vehicleInfo, rentalInfo, err := marshalContractDocs(c)
	if err != nil {
		return err
	}
	query := `INSERT INTO contracts (contract_number, partner_id, partner_info, client_info, second_driver_info, vehicle_info, rental_info, status, created_by, created_at, rental_start, rental_end, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.ContractNumber, c.PartnerID, partnerInfo, clientInfo, secondDriver, vehicleInfo, rentalInfo,
		c.Status, c.Metadata.CreatedBy, c.Metadata.CreatedAt,
		c.RentalInfo.StartDateTime, c.RentalInfo.EndDateTime, time.Now(),
	).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id, partnerID int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 AND partner_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, partnerID)
	c := &domain.Contract{}
	if err := scanContract(row, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE partner_id = $1`

	args := []interface{}{partnerID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	partnerInfo, clientInfo, secondDriver, vehicleInfo, rentalInfo, err := marshalContractDocs(c)
	if err != nil {
		return err
	}
	query := `UPDATE contracts SET partner_info=$1, client_info=$2, second_driver_info=$3, vehicle_info=$4, rental_info=$5, status=$6, rental_start=$7, rental_end=$8, updated_on=$9
	          WHERE id=$10 AND partner_id=$11`
	_, err = r.db.ExecContext(ctx, query,
		partnerInfo, clientInfo, secondDriver, vehicleInfo, rentalInfo, c.Status,
		c.RentalInfo.StartDateTime, c.RentalInfo.EndDateTime, time.Now(),
		c.ID, c.PartnerID)
	return err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error {
	query := `UPDATE contracts SET status=$1, updated_on=$2 WHERE id=$3 AND partner_id=$4`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id, partnerID)
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

func (r *contractRepository) Delete(ctx context.Context, id, partnerID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id=$1 AND partner_id=$2`, id, partnerID)
	return err
}

func (r *contractRepository) ListDueBack(ctx context.Context, from, to time.Time) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE status = 'active' AND rental_end >= $1 AND rental_end < $2 ORDER BY rental_end`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// marshalContractDocs returns the jsonb documents for a contract. The second
// driver slot is interface{} so an absent driver becomes a SQL NULL; a nil
// []byte would reach lib/pq as a non-NULL bytea and be rejected by the jsonb
// column.
func marshalContractDocs(c *domain.Contract) (partnerInfo, clientInfo []byte, secondDriver interface{}, vehicleInfo, rentalInfo []byte, err error) {
	if partnerInfo, err = json.Marshal(c.PartnerInfo); err != nil {
		return
	}
	if clientInfo, err = json.Marshal(c.ClientInfo); err != nil {
		return
	}
	if c.SecondDriverInfo != nil {
		var doc []byte
		if doc, err = json.Marshal(c.SecondDriverInfo); err != nil {
			return
		}
		secondDriver = doc
	}
	if vehicleInfo, err = json.Marshal(c.VehicleInfo); err != nil {
		return
	}
	rentalInfo, err = json.Marshal(c.RentalInfo)
	return
}

func scanContract(s rowScanner, c *domain.Contract) error {
	var partnerInfo, clientInfo, vehicleInfo, rentalInfo []byte
	var secondDriver []byte
	err := s.Scan(&c.ID, &c.ContractNumber, &c.PartnerID, &partnerInfo, &clientInfo, &secondDriver, &vehicleInfo, &rentalInfo,
		&c.Status, &c.Metadata.CreatedBy, &c.Metadata.CreatedAt, &c.UpdatedOn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(partnerInfo, &c.PartnerInfo); err != nil {
		return err
	}
	if err := json.Unmarshal(clientInfo, &c.ClientInfo); err != nil {
		return err
	}
	if len(secondDriver) > 0 {
		c.SecondDriverInfo = &domain.SecondDriverSnapshot{}
		if err := json.Unmarshal(secondDriver, c.SecondDriverInfo); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(vehicleInfo, &c.VehicleInfo); err != nil {
		return err
	}
	return json.Unmarshal(rentalInfo, &c.RentalInfo)
}
