package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/repository/postgres"
)

func vehicleRows() *sqlmock.Rows {
	insuranceStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	insuranceEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "partner_id", "name", "type", "matricule", "gearbox", "fuel", "tank_level", "description", "image_url", "price_per_day",
		"radio", "gps", "mp3", "cd", "key_count", "odometer_start", "odometer_return",
		"road_tax_2026", "road_tax_2027", "road_tax_2028", "road_tax_2029",
		"insurance_start", "insurance_end", "oil_change_interval_km", "remarks", "damages", "available", "created_on", "updated_on",
	}).AddRow(
		12, 7, "Dacia Logan", "berline", "12345-A-40", "manual", "diesel", 50, "", "", 250.0,
		true, false, true, false, 2, 42000, 0,
		true, false, false, false,
		insuranceStart, insuranceEnd, 10000, "", []byte(`{"scratch rear bumper",dent}`), true, time.Now(), time.Now(),
	)
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 AND partner_id = \\$2").
			WithArgs(int32(12), int32(7)).
			WillReturnRows(vehicleRows())

		v, err := repo.GetByID(ctx, 12, 7)
		require.NoError(t, err)
		assert.Equal(t, "Dacia Logan", v.Name)
		assert.Equal(t, 250.0, v.PricePerDay)
		assert.Equal(t, []string{"scratch rear bumper", "dent"}, v.Damages)
		require.NotNil(t, v.InsuranceEnd)
		assert.Equal(t, 2024, v.InsuranceEnd.Year())
	})
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		v := &domain.Vehicle{
			PartnerID:   7,
			Name:        "Dacia Logan",
			Type:        "berline",
			Matricule:   "12345-A-40",
			Gearbox:     "manual",
			Fuel:        "diesel",
			PricePerDay: 250,
			Damages:     []string{"scratch rear bumper"},
			Available:   true,
		}

		mock.ExpectQuery("INSERT INTO vehicles").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, int32(12), v.ID)
	})
}

func TestVehicleRepository_ListWithInsuranceEnding(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE insurance_end >= \\$1 AND insurance_end < \\$2").
			WithArgs(from, to).
			WillReturnRows(vehicleRows())

		vehicles, err := repo.ListWithInsuranceEnding(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, int32(12), vehicles[0].ID)
	})
}
