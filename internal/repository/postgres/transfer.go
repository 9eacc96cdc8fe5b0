package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) CreateVehicle(ctx context.Context, v *domain.TransferVehicle) error {
	routes, err := json.Marshal(v.Routes)
	if err != nil {
		return err
	}
	query := `INSERT INTO transfer_vehicles (partner_id, title, capacity, luggage, routes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.PartnerID, v.Title, v.Capacity, v.Luggage, routes, time.Now(), time.Now()).Scan(&v.ID)
}

func (r *transferRepository) GetVehicleByID(ctx context.Context, id int32) (*domain.TransferVehicle, error) {
	query := `SELECT id, partner_id, title, capacity, luggage, routes, created_on, updated_on FROM transfer_vehicles WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	v := &domain.TransferVehicle{}
	if err := scanTransferVehicle(row, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *transferRepository) ListVehicles(ctx context.Context, partnerID int32) ([]domain.TransferVehicle, error) {
	query := `SELECT id, partner_id, title, capacity, luggage, routes, created_on, updated_on FROM transfer_vehicles WHERE partner_id = $1 ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.TransferVehicle
	for rows.Next() {
		var v domain.TransferVehicle
		if err := scanTransferVehicle(rows, &v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *transferRepository) UpdateVehicle(ctx context.Context, v *domain.TransferVehicle) error {
	routes, err := json.Marshal(v.Routes)
	if err != nil {
		return err
	}
	query := `UPDATE transfer_vehicles SET title=$1, capacity=$2, luggage=$3, routes=$4, updated_on=$5 WHERE id=$6 AND partner_id=$7`
	_, err = r.db.ExecContext(ctx, query, v.Title, v.Capacity, v.Luggage, routes, time.Now(), v.ID, v.PartnerID)
	return err
}

func (r *transferRepository) DeleteVehicle(ctx context.Context, id, partnerID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transfer_vehicles WHERE id=$1 AND partner_id=$2`, id, partnerID)
	return err
}

func (r *transferRepository) CreateBooking(ctx context.Context, b *domain.TransferBooking) error {
	query := `INSERT INTO transfer_bookings (vehicle_id, pickup, dropoff, trip_type, pickup_time, passengers, first_name, last_name, email, phone, notes, price, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.VehicleID, b.Pickup, b.Dropoff, b.TripType, b.PickupTime, b.Passengers, b.FirstName, b.LastName, b.Email, b.Phone, b.Notes, b.Price, time.Now()).Scan(&b.ID)
}

func (r *transferRepository) ListBookings(ctx context.Context, partnerID int32) ([]domain.TransferBooking, error) {
	query := `SELECT b.id, b.vehicle_id, b.pickup, b.dropoff, b.trip_type, b.pickup_time, b.passengers, b.first_name, b.last_name, b.email, b.phone, b.notes, b.price, b.created_on
	          FROM transfer_bookings b JOIN transfer_vehicles v ON v.id = b.vehicle_id
	          WHERE v.partner_id = $1 ORDER BY b.pickup_time DESC`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.TransferBooking
	for rows.Next() {
		var b domain.TransferBooking
		if err := rows.Scan(&b.ID, &b.VehicleID, &b.Pickup, &b.Dropoff, &b.TripType, &b.PickupTime, &b.Passengers, &b.FirstName, &b.LastName, &b.Email, &b.Phone, &b.Notes, &b.Price, &b.CreatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanTransferVehicle(s rowScanner, v *domain.TransferVehicle) error {
	var routes []byte
	if err := s.Scan(&v.ID, &v.PartnerID, &v.Title, &v.Capacity, &v.Luggage, &routes, &v.CreatedOn, &v.UpdatedOn); err != nil {
		return err
	}
	if len(routes) == 0 {
		return nil
	}
	return json.Unmarshal(routes, &v.Routes)
}
