// Package contract assembles rental contract aggregates from live client,
// vehicle and partner records. The builder is the single place where
// denormalized snapshots are taken; the create, update and smart-contract
// paths all go through it so the copied field lists cannot drift apart.
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/pricing"
)

// Draft carries the operator-entered contract form. Numeric fields stay
// strings here: coercion rules (unparseable means zero) belong to the
// pricing package, not to transport decoding.
type Draft struct {
	// ClientID selects a directory client. When zero, the client was
	// entered inline on the form and Client holds the fields directly.
	ClientID int32
	Client   domain.ClientSnapshot

	VehicleID    int32
	SecondDriver *domain.SecondDriverSnapshot

	StartDateTime time.Time
	EndDateTime   time.Time
	StartLocation string
	EndLocation   string

	// PricePerDay is the operator's rate override. Empty means "use the
	// vehicle's default daily price".
	PricePerDay string

	Status domain.ContractStatus
}

// SmartTerms are the extra smart-contract fields collected on top of a
// Draft. Tax fields arrive as raw form strings.
type SmartTerms struct {
	TVA        string
	StayTax    string
	OtherTaxes string

	TankLevel     int32
	Insurance     domain.InsuranceInfo
	Damages       []domain.Damage
	PaymentMethod domain.PaymentMethod
	CardInfo      *domain.CardInfo
	ChequeInfo    *domain.ChequeInfo
	Driver        *domain.DriverInfo
	Notes         string
}

// Builder produces contract aggregates. Now and NewNumber are injectable so
// tests can pin the creation timestamp and contract number; both outputs
// are then fully deterministic for identical inputs.
type Builder struct {
	Now       func() time.Time
	NewNumber func(prefix string) string
}

func NewBuilder() *Builder {
	return &Builder{
		Now:       time.Now,
		NewNumber: Number,
	}
}

// Number generates a contract number like "CTR-1718000000000-3f9a2c1b".
func Number(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Build validates the draft, resolves references against the supplied live
// collections, and returns the contract aggregate with all three snapshots
// copied by value. Validation runs before any snapshot copy; the returned
// aggregate never shares storage with the live records.
func (b *Builder) Build(d Draft, clients []domain.Client, vehicles []domain.Vehicle, partner domain.Partner) (*domain.Contract, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	clientInfo, err := resolveClient(d, clients)
	if err != nil {
		return nil, err
	}

	vehicle, err := resolveVehicle(d.VehicleID, vehicles)
	if err != nil {
		return nil, err
	}

	rental := b.rentalInfo(d, vehicle, nil)

	status := d.Status
	if !domain.ValidContractStatus(status) {
		status = domain.ContractStatusPending
	}

	return &domain.Contract{
		ContractNumber:   b.NewNumber("CTR"),
		PartnerID:        partner.ID,
		PartnerInfo:      domain.SnapshotPartner(partner),
		ClientInfo:       clientInfo,
		SecondDriverInfo: cloneSecondDriver(d.SecondDriver),
		VehicleInfo:      domain.SnapshotVehicle(vehicle),
		RentalInfo:       rental,
		Status:           status,
		Metadata: domain.ContractMetadata{
			CreatedBy: partner.ID,
			CreatedAt: b.Now(),
		},
	}, nil
}

// BuildSmart assembles a smart contract. The smart path always references a
// directory client, and its flat taxes feed the same pricer as Build.
func (b *Builder) BuildSmart(d Draft, terms SmartTerms, clients []domain.Client, vehicles []domain.Vehicle, partner domain.Partner) (*domain.SmartContract, error) {
	if d.ClientID == 0 {
		return nil, &domain.MissingFieldError{Field: "clientId"}
	}
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	clientInfo, err := resolveClient(d, clients)
	if err != nil {
		return nil, err
	}

	vehicle, err := resolveVehicle(d.VehicleID, vehicles)
	if err != nil {
		return nil, err
	}

	taxes := domain.Taxes{
		TVA:        pricing.Amount(terms.TVA),
		StayTax:    pricing.Amount(terms.StayTax),
		OtherTaxes: pricing.Amount(terms.OtherTaxes),
	}
	rental := b.rentalInfo(d, vehicle, taxes.FlatTaxes())

	status := d.Status
	if !domain.ValidContractStatus(status) {
		status = domain.ContractStatusPending
	}

	return &domain.SmartContract{
		ContractNumber: b.NewNumber("SMART"),
		PartnerID:      partner.ID,
		ClientID:       d.ClientID,
		VehicleID:      vehicle.ID,
		ClientInfo:     clientInfo,
		VehicleInfo:    domain.SnapshotVehicle(vehicle),
		RentalInfo:     rental,
		TankLevel:      terms.TankLevel,
		Insurance:      terms.Insurance,
		Taxes:          taxes,
		Damages:        append([]domain.Damage(nil), terms.Damages...),
		PaymentMethod:  paymentMethodOrDefault(terms.PaymentMethod),
		CardInfo:       terms.CardInfo,
		ChequeInfo:     terms.ChequeInfo,
		Driver:         terms.Driver,
		Status:         status,
		Notes:          terms.Notes,
		Metadata: domain.ContractMetadata{
			CreatedBy: partner.ID,
			CreatedAt: b.Now(),
		},
	}, nil
}

func (b *Builder) rentalInfo(d Draft, vehicle domain.Vehicle, flatTaxes []float64) domain.RentalInfo {
	pricePerDay := vehicle.PricePerDay
	if strings.TrimSpace(d.PricePerDay) != "" {
		pricePerDay = pricing.Amount(d.PricePerDay)
	}

	quote := pricing.QuoteRental(
		pricing.RentalPeriod{Start: d.StartDateTime, End: d.EndDateTime},
		pricing.RateTerms{PricePerDay: pricePerDay, FlatTaxes: flatTaxes},
	)

	return domain.RentalInfo{
		StartDateTime: d.StartDateTime,
		EndDateTime:   d.EndDateTime,
		StartLocation: d.StartLocation,
		EndLocation:   d.EndLocation,
		PricePerDay:   pricePerDay,
		RentalDays:    quote.RentalDays,
		TotalPrice:    quote.TotalPrice,
	}
}

// validateDraft reports the first absent mandatory field, in form order.
func validateDraft(d Draft) error {
	if d.ClientID == 0 {
		if strings.TrimSpace(d.Client.LastName) == "" {
			return &domain.MissingFieldError{Field: "clientLastName"}
		}
		if strings.TrimSpace(d.Client.FirstName) == "" {
			return &domain.MissingFieldError{Field: "clientFirstName"}
		}
	}
	if d.VehicleID == 0 {
		return &domain.MissingFieldError{Field: "vehicleId"}
	}
	if d.StartDateTime.IsZero() {
		return &domain.MissingFieldError{Field: "startDateTime"}
	}
	if d.EndDateTime.IsZero() {
		return &domain.MissingFieldError{Field: "endDateTime"}
	}
	if strings.TrimSpace(d.StartLocation) == "" {
		return &domain.MissingFieldError{Field: "startLocation"}
	}
	if strings.TrimSpace(d.EndLocation) == "" {
		return &domain.MissingFieldError{Field: "endLocation"}
	}
	return nil
}

func resolveClient(d Draft, clients []domain.Client) (domain.ClientSnapshot, error) {
	if d.ClientID == 0 {
		snap := d.Client
		snap.BirthDate = cloneTime(snap.BirthDate)
		snap.LicenseIssueDate = cloneTime(snap.LicenseIssueDate)
		return snap, nil
	}
	for _, c := range clients {
		if c.ID == d.ClientID {
			return domain.SnapshotClient(c), nil
		}
	}
	return domain.ClientSnapshot{}, &domain.NotFoundError{Entity: "client", Key: fmt.Sprintf("%d", d.ClientID)}
}

func resolveVehicle(id int32, vehicles []domain.Vehicle) (domain.Vehicle, error) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, &domain.NotFoundError{Entity: "vehicle", Key: fmt.Sprintf("%d", id)}
}

func paymentMethodOrDefault(m domain.PaymentMethod) domain.PaymentMethod {
	switch m {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodCheque:
		return m
	}
	return domain.PaymentMethodCash
}

func cloneSecondDriver(d *domain.SecondDriverSnapshot) *domain.SecondDriverSnapshot {
	if d == nil {
		return nil
	}
	c := *d
	c.LicenseIssueDate = cloneTime(c.LicenseIssueDate)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
