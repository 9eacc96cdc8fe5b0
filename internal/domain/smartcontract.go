package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "espece"
	PaymentMethodCard   PaymentMethod = "carte"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// InsuranceInfo is the per-contract insurance rider on a smart contract,
// distinct from the vehicle's own insurance window.
type InsuranceInfo struct {
	Company   string     `json:"company"`
	Number    string     `json:"number"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Taxes are the flat (non-prorated) add-ons applied once per contract.
type Taxes struct {
	TVA        float64 `json:"tva"`
	StayTax    float64 `json:"stay_tax"`
	OtherTaxes float64 `json:"other_taxes"`
}

// Damage is a single recorded damage on a vehicle part.
type Damage struct {
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Date        *time.Time `json:"date,omitempty"`
}

type CardInfo struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiration string `json:"expiration"`
}

type ChequeInfo struct {
	Number    string     `json:"number"`
	Bank      string     `json:"bank"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

// DriverInfo identifies the designated driver on a smart contract.
type DriverInfo struct {
	LastName      string     `json:"last_name"`
	FirstName     string     `json:"first_name"`
	CIN           string     `json:"cin"`
	LicenseNumber string     `json:"license_number"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Phone         string     `json:"phone"`
}

// SmartContract is the connected-vehicle rental aggregate. It shares the
// pricing and snapshot semantics of Contract and adds taxes, per-contract
// insurance, damage records and payment details.
type SmartContract struct {
	ID             int32           `json:"id"`
	ContractNumber string          `json:"contract_number"`
	PartnerID      int32           `json:"partner_id"`
	ClientID       int32           `json:"client_id"`
	VehicleID      int32           `json:"vehicle_id"`
	ClientInfo     ClientSnapshot  `json:"client_info"`
	VehicleInfo    VehicleSnapshot `json:"vehicle_info"`
	RentalInfo     RentalInfo      `json:"rental_info"`

	TankLevel int32         `json:"tank_level"`
	Insurance InsuranceInfo `json:"insurance"`
	Taxes     Taxes         `json:"taxes"`
	Damages   []Damage      `json:"damages"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	CardInfo      *CardInfo     `json:"card_info,omitempty"`
	ChequeInfo    *ChequeInfo   `json:"cheque_info,omitempty"`

	Driver *DriverInfo `json:"driver,omitempty"`

	Status   ContractStatus   `json:"status"`
	Notes    string           `json:"notes"`
	Metadata ContractMetadata `json:"metadata"`

	UpdatedOn time.Time `json:"updated_on"`
}

// FlatTaxes returns the tax components in the order they appear on the form.
func (t Taxes) FlatTaxes() []float64 {
	return []float64{t.TVA, t.StayTax, t.OtherTaxes}
}
