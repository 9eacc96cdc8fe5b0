package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, partner_id, name, type, matricule, gearbox, fuel, tank_level, description, image_url, price_per_day,
	radio, gps, mp3, cd, key_count, odometer_start, odometer_return,
	road_tax_2026, road_tax_2027, road_tax_2028, road_tax_2029,
	insurance_start, insurance_end, oil_change_interval_km, remarks, damages, available, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (partner_id, name, type, matricule, gearbox, fuel, tank_level, description, image_url, price_per_day,
	            radio, gps, mp3, cd, key_count, odometer_start, odometer_return,
	            road_tax_2026, road_tax_2027, road_tax_2028, road_tax_2029,
	            insurance_start, insurance_end, oil_change_interval_km, remarks, damages, available, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.PartnerID, v.Name, v.Type, v.Matricule, v.Gearbox, v.Fuel, v.TankLevel, v.Description, v.ImageURL, v.PricePerDay,
		v.Radio, v.GPS, v.MP3, v.CD, v.KeyCount, v.OdometerStart, v.OdometerReturn,
		v.RoadTax2026, v.RoadTax2027, v.RoadTax2028, v.RoadTax2029,
		v.InsuranceStart, v.InsuranceEnd, v.OilChangeIntervalKM, v.Remarks, pq.Array(v.Damages), v.Available, time.Now(), time.Now(),
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id, partnerID int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND partner_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, partnerID)
	return scanVehicle(row)
}

func (r *vehicleRepository) ListByPartner(ctx context.Context, partnerID int32) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE partner_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, type=$2, matricule=$3, gearbox=$4, fuel=$5, tank_level=$6, description=$7, image_url=$8, price_per_day=$9,
	            radio=$10, gps=$11, mp3=$12, cd=$13, key_count=$14, odometer_start=$15, odometer_return=$16,
	            road_tax_2026=$17, road_tax_2027=$18, road_tax_2028=$19, road_tax_2029=$20,
	            insurance_start=$21, insurance_end=$22, oil_change_interval_km=$23, remarks=$24, damages=$25, available=$26, updated_on=$27
	          WHERE id=$28 AND partner_id=$29`
	_, err := r.db.ExecContext(ctx, query,
		v.Name, v.Type, v.Matricule, v.Gearbox, v.Fuel, v.TankLevel, v.Description, v.ImageURL, v.PricePerDay,
		v.Radio, v.GPS, v.MP3, v.CD, v.KeyCount, v.OdometerStart, v.OdometerReturn,
		v.RoadTax2026, v.RoadTax2027, v.RoadTax2028, v.RoadTax2029,
		v.InsuranceStart, v.InsuranceEnd, v.OilChangeIntervalKM, v.Remarks, pq.Array(v.Damages), v.Available, time.Now(),
		v.ID, v.PartnerID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id, partnerID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id=$1 AND partner_id=$2`, id, partnerID)
	return err
}

func (r *vehicleRepository) ListWithInsuranceEnding(ctx context.Context, from, to time.Time) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE insurance_end >= $1 AND insurance_end < $2 ORDER BY insurance_end`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) ListWithUnpaidRoadTax(ctx context.Context, year int) ([]domain.Vehicle, error) {
	var column string
	switch year {
	case 2026:
		column = "road_tax_2026"
	case 2027:
		column = "road_tax_2027"
	case 2028:
		column = "road_tax_2028"
	case 2029:
		column = "road_tax_2029"
	default:
		return nil, fmt.Errorf("no road tax column for year %d", year)
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE ` + column + ` = false ORDER BY partner_id, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicleInto(s rowScanner, v *domain.Vehicle) error {
	return s.Scan(
		&v.ID, &v.PartnerID, &v.Name, &v.Type, &v.Matricule, &v.Gearbox, &v.Fuel, &v.TankLevel, &v.Description, &v.ImageURL, &v.PricePerDay,
		&v.Radio, &v.GPS, &v.MP3, &v.CD, &v.KeyCount, &v.OdometerStart, &v.OdometerReturn,
		&v.RoadTax2026, &v.RoadTax2027, &v.RoadTax2028, &v.RoadTax2029,
		&v.InsuranceStart, &v.InsuranceEnd, &v.OilChangeIntervalKM, &v.Remarks, pq.Array(&v.Damages), &v.Available, &v.CreatedOn, &v.UpdatedOn)
}

func scanVehicle(row *sql.Row) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	if err := scanVehicleInto(row, v); err != nil {
		return nil, err
	}
	return v, nil
}

func scanVehicles(rows *sql.Rows) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicleInto(rows, &v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
