package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wegorent-backend/internal/domain"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func testBuilder() *Builder {
	return &Builder{
		Now:       func() time.Time { return fixedNow },
		NewNumber: func(prefix string) string { return prefix + "-TEST-0001" },
	}
}

func testPartner() domain.Partner {
	return domain.Partner{
		ID:          7,
		CompanyName: "Atlas Cars",
		Email:       "contact@atlascars.ma",
		Phone:       "+212600000000",
		City:        "Marrakech",
		Country:     "Morocco",
	}
}

func testVehicle() domain.Vehicle {
	return domain.Vehicle{
		ID:          12,
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
}

func testClient() domain.Client {
	birth := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	return domain.Client{
		ID:            3,
		PartnerID:     7,
		LastName:      "Alaoui",
		FirstName:     "Karim",
		BirthDate:     &birth,
		Phone:         "+212611111111",
		Email:         "karim@example.com",
		CIN:           "AB123456",
		LicenseNumber: "40/998877",
	}
}

func validDraft() Draft {
	return Draft{
		Client:        domain.ClientSnapshot{LastName: "Alaoui", FirstName: "Karim"},
		VehicleID:     12,
		StartDateTime: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC),
		StartLocation: "Agence Marrakech",
		EndLocation:   "Aeroport RAK",
	}
}

func TestBuild(t *testing.T) {
	b := testBuilder()

	t.Run("Inline client draft", func(t *testing.T) {
		c, err := b.Build(validDraft(), nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)

		assert.Equal(t, "CTR-TEST-0001", c.ContractNumber)
		assert.Equal(t, int32(7), c.PartnerID)
		assert.Equal(t, "Atlas Cars", c.PartnerInfo.CompanyName)
		assert.Equal(t, "Alaoui", c.ClientInfo.LastName)
		assert.Equal(t, "Dacia Logan", c.VehicleInfo.Name)
		assert.Equal(t, domain.ContractStatusPending, c.Status)
		assert.Equal(t, int32(7), c.Metadata.CreatedBy)
		assert.Equal(t, fixedNow, c.Metadata.CreatedAt)
	})

	t.Run("Rental pricing from vehicle default rate", func(t *testing.T) {
		c, err := b.Build(validDraft(), nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)

		assert.Equal(t, int32(2), c.RentalInfo.RentalDays)
		assert.Equal(t, 250.0, c.RentalInfo.PricePerDay)
		assert.Equal(t, 500.0, c.RentalInfo.TotalPrice)
	})

	t.Run("Operator rate override", func(t *testing.T) {
		d := validDraft()
		d.PricePerDay = "300"
		c, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)

		assert.Equal(t, 300.0, c.RentalInfo.PricePerDay)
		assert.Equal(t, 600.0, c.RentalInfo.TotalPrice)
	})

	t.Run("Unparseable rate override coerces to zero", func(t *testing.T) {
		d := validDraft()
		d.PricePerDay = "abc"
		c, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)

		assert.Equal(t, 0.0, c.RentalInfo.TotalPrice)
	})

	t.Run("Directory client resolved by id", func(t *testing.T) {
		d := validDraft()
		d.ClientID = 3
		d.Client = domain.ClientSnapshot{}
		c, err := b.Build(d, []domain.Client{testClient()}, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)

		assert.Equal(t, int32(3), c.ClientInfo.ClientID)
		assert.Equal(t, "Karim", c.ClientInfo.FirstName)
		assert.Equal(t, "AB123456", c.ClientInfo.CIN)
	})

	t.Run("Unknown client id", func(t *testing.T) {
		d := validDraft()
		d.ClientID = 99
		_, err := b.Build(d, []domain.Client{testClient()}, []domain.Vehicle{testVehicle()}, testPartner())
		require.Error(t, err)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "client", nf.Entity)
		assert.Equal(t, "99", nf.Key)
	})

	t.Run("Unknown vehicle id", func(t *testing.T) {
		d := validDraft()
		d.VehicleID = 99
		_, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.Error(t, err)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "vehicle", nf.Entity)
	})

	t.Run("Explicit status kept when valid", func(t *testing.T) {
		d := validDraft()
		d.Status = domain.ContractStatusActive
		c, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusActive, c.Status)
	})

	t.Run("Unknown status falls back to pending", func(t *testing.T) {
		d := validDraft()
		d.Status = "archived"
		c, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusPending, c.Status)
	})
}

func TestBuildValidation(t *testing.T) {
	b := testBuilder()
	vehicles := []domain.Vehicle{testVehicle()}

	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"Missing client last name", func(d *Draft) { d.Client.LastName = "" }, "clientLastName"},
		{"Missing client first name", func(d *Draft) { d.Client.FirstName = "  " }, "clientFirstName"},
		{"Missing vehicle", func(d *Draft) { d.VehicleID = 0 }, "vehicleId"},
		{"Missing start datetime", func(d *Draft) { d.StartDateTime = time.Time{} }, "startDateTime"},
		{"Missing end datetime", func(d *Draft) { d.EndDateTime = time.Time{} }, "endDateTime"},
		{"Missing start location", func(d *Draft) { d.StartLocation = "" }, "startLocation"},
		{"Missing end location", func(d *Draft) { d.EndLocation = " " }, "endLocation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			_, err := b.Build(d, nil, vehicles, testPartner())
			require.Error(t, err)

			var mf *domain.MissingFieldError
			require.ErrorAs(t, err, &mf)
			assert.Equal(t, tt.field, mf.Field)
		})
	}

	t.Run("First absent field wins", func(t *testing.T) {
		d := validDraft()
		d.Client.LastName = ""
		d.VehicleID = 0
		_, err := b.Build(d, nil, vehicles, testPartner())

		var mf *domain.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "clientLastName", mf.Field)
	})
}

func TestBuildSnapshotIsolation(t *testing.T) {
	b := testBuilder()
	client := testClient()
	vehicle := testVehicle()

	d := validDraft()
	d.ClientID = client.ID
	d.Client = domain.ClientSnapshot{}

	c, err := b.Build(d, []domain.Client{client}, []domain.Vehicle{vehicle}, testPartner())
	require.NoError(t, err)

	// Mutating the live records after the build must not leak into the
	// contract's snapshots.
	vehicle.Damages[0] = "total loss"
	vehicle.Name = "changed"
	*client.BirthDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "scratch rear bumper", c.VehicleInfo.Damages[0])
	assert.Equal(t, "Dacia Logan", c.VehicleInfo.Name)
	assert.Equal(t, 1990, c.ClientInfo.BirthDate.Year())
}

func TestBuildDeterministic(t *testing.T) {
	b := testBuilder()
	d := validDraft()

	first, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
	require.NoError(t, err)
	second, err := b.Build(d, nil, []domain.Vehicle{testVehicle()}, testPartner())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSmart(t *testing.T) {
	b := testBuilder()
	clients := []domain.Client{testClient()}
	vehicles := []domain.Vehicle{testVehicle()}

	t.Run("Requires directory client", func(t *testing.T) {
		d := validDraft()
		_, err := b.BuildSmart(d, SmartTerms{}, clients, vehicles, testPartner())

		var mf *domain.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "clientId", mf.Field)
	})

	t.Run("Taxes feed the total once", func(t *testing.T) {
		d := validDraft()
		d.ClientID = 3
		terms := SmartTerms{TVA: "40", StayTax: "10", OtherTaxes: "x"}

		sc, err := b.BuildSmart(d, terms, clients, vehicles, testPartner())
		require.NoError(t, err)

		assert.Equal(t, "SMART-TEST-0001", sc.ContractNumber)
		assert.Equal(t, 40.0, sc.Taxes.TVA)
		assert.Equal(t, 10.0, sc.Taxes.StayTax)
		assert.Equal(t, 0.0, sc.Taxes.OtherTaxes)
		// 2 days * 250 + 40 + 10
		assert.Equal(t, 550.0, sc.RentalInfo.TotalPrice)
	})

	t.Run("Payment method defaults to cash", func(t *testing.T) {
		d := validDraft()
		d.ClientID = 3
		sc, err := b.BuildSmart(d, SmartTerms{PaymentMethod: "bitcoin"}, clients, vehicles, testPartner())
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentMethodCash, sc.PaymentMethod)
	})
}
