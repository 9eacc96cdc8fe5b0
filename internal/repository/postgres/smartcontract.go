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

type smartContractRepository struct {
	db *sql.DB
}

func NewSmartContractRepository(db *sql.DB) repository.SmartContractRepository {
	return &smartContractRepository{db: db}
}

const smartContractColumns = `id, contract_number, partner_id, client_id, vehicle_id, document, status, created_by, created_at, updated_on`

// smartContractDoc is the jsonb payload holding everything that has no
// dedicated column. Keeping one document avoids a dozen nullable columns
// for the payment and insurance variants.
type smartContractDoc struct {
	ClientInfo    domain.ClientSnapshot  `json:"client_info"`
	VehicleInfo   domain.VehicleSnapshot `json:"vehicle_info"`
	RentalInfo    domain.RentalInfo      `json:"rental_info"`
	TankLevel     int32                  `json:"tank_level"`
	Insurance     domain.InsuranceInfo   `json:"insurance"`
	Taxes         domain.Taxes           `json:"taxes"`
	Damages       []domain.Damage        `json:"damages,omitempty"`
	PaymentMethod domain.PaymentMethod   `json:"payment_method"`
	CardInfo      *domain.CardInfo       `json:"card_info,omitempty"`
	ChequeInfo    *domain.ChequeInfo     `json:"cheque_info,omitempty"`
	Driver        *domain.DriverInfo     `json:"driver,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
}

func (r *smartContractRepository) Create(ctx context.Context, sc *domain.SmartContract) error {
	doc, err := json.Marshal(docFromSmartContract(sc))
	if err != nil {
		return err
	}
	query := `INSERT INTO smart_contracts (contract_number, partner_id, client_id, vehicle_id, document, status, created_by, created_at, rental_start, rental_end, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		sc.ContractNumber, sc.PartnerID, sc.ClientID, sc.VehicleID, doc, sc.Status,
		sc.Metadata.CreatedBy, sc.Metadata.CreatedAt,
		sc.RentalInfo.StartDateTime, sc.RentalInfo.EndDateTime, time.Now(),
	).Scan(&sc.ID)
}

func (r *smartContractRepository) GetByID(ctx context.Context, id, partnerID int32) (*domain.SmartContract, error) {
	query := `SELECT ` + smartContractColumns + ` FROM smart_contracts WHERE id = $1 AND partner_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, partnerID)
	sc := &domain.SmartContract{}
	if err := scanSmartContract(row, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (r *smartContractRepository) ListByPartner(ctx context.Context, partnerID int32, status string, page, pageSize int32) ([]domain.SmartContract, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + smartContractColumns + ` FROM smart_contracts WHERE partner_id = $1`

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

	var contracts []domain.SmartContract
	for rows.Next() {
		var sc domain.SmartContract
		if err := scanSmartContract(rows, &sc); err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, sc)
	}
	return contracts, count, rows.Err()
}

func (r *smartContractRepository) Update(ctx context.Context, sc *domain.SmartContract) error {
	doc, err := json.Marshal(docFromSmartContract(sc))
	if err != nil {
		return err
	}
	query := `UPDATE smart_contracts SET document=$1, status=$2, rental_start=$3, rental_end=$4, updated_on=$5 WHERE id=$6 AND partner_id=$7`
	_, err = r.db.ExecContext(ctx, query, doc, sc.Status, sc.RentalInfo.StartDateTime, sc.RentalInfo.EndDateTime, time.Now(), sc.ID, sc.PartnerID)
	return err
}

func (r *smartContractRepository) UpdateStatus(ctx context.Context, id, partnerID int32, status domain.ContractStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE smart_contracts SET status=$1, updated_on=$2 WHERE id=$3 AND partner_id=$4`, status, time.Now(), id, partnerID)
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

func (r *smartContractRepository) Delete(ctx context.Context, id, partnerID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM smart_contracts WHERE id=$1 AND partner_id=$2`, id, partnerID)
	return err
}

func docFromSmartContract(sc *domain.SmartContract) smartContractDoc {
	return smartContractDoc{
		ClientInfo:    sc.ClientInfo,
		VehicleInfo:   sc.VehicleInfo,
		RentalInfo:    sc.RentalInfo,
		TankLevel:     sc.TankLevel,
		Insurance:     sc.Insurance,
		Taxes:         sc.Taxes,
		Damages:       sc.Damages,
		PaymentMethod: sc.PaymentMethod,
		CardInfo:      sc.CardInfo,
		ChequeInfo:    sc.ChequeInfo,
		Driver:        sc.Driver,
		Notes:         sc.Notes,
	}
}

func scanSmartContract(s rowScanner, sc *domain.SmartContract) error {
	var raw []byte
	err := s.Scan(&sc.ID, &sc.ContractNumber, &sc.PartnerID, &sc.ClientID, &sc.VehicleID, &raw, &sc.Status,
		&sc.Metadata.CreatedBy, &sc.Metadata.CreatedAt, &sc.UpdatedOn)
	if err != nil {
		return err
	}
	var doc smartContractDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	sc.ClientInfo = doc.ClientInfo
	sc.VehicleInfo = doc.VehicleInfo
	sc.RentalInfo = doc.RentalInfo
	sc.TankLevel = doc.TankLevel
	sc.Insurance = doc.Insurance
	sc.Taxes = doc.Taxes
	sc.Damages = doc.Damages
	sc.PaymentMethod = doc.PaymentMethod
	sc.CardInfo = doc.CardInfo
	sc.ChequeInfo = doc.ChequeInfo
	sc.Driver = doc.Driver
	sc.Notes = doc.Notes
	return nil
}
