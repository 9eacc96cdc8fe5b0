package domain

import "time"

type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "pending"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// ValidContractStatus reports whether s is one of the known statuses.
func ValidContractStatus(s ContractStatus) bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusCompleted, ContractStatusCancelled:
		return true
	}
	return false
}

// ClientSnapshot is the point-in-time copy of a client embedded in a
// contract. Later edits to the live Client record never reach it.
type ClientSnapshot struct {
	ClientID         int32      `json:"client_id,omitempty"`
	LastName         string     `json:"last_name"`
	FirstName        string     `json:"first_name"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email,omitempty"`
	Address          string     `json:"address"`
	Passport         string     `json:"passport,omitempty"`
	CIN              string     `json:"cin,omitempty"`
	LicenseNumber    string     `json:"license_number"`
	LicenseIssueDate *time.Time `json:"license_issue_date,omitempty"`
}

// SecondDriverSnapshot carries the optional additional driver. Identity
// documents are not collected for the second driver, only license details.
type SecondDriverSnapshot struct {
	LastName         string     `json:"last_name"`
	FirstName        string     `json:"first_name"`
	LicenseNumber    string     `json:"license_number"`
	LicenseIssueDate *time.Time `json:"license_issue_date,omitempty"`
}

// VehicleSnapshot is the full descriptive copy of the rented vehicle taken
// when the contract is built, so the printed contract stays stable.
type VehicleSnapshot struct {
	VehicleID   int32   `json:"vehicle_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Matricule   string  `json:"matricule"`
	Gearbox     string  `json:"gearbox"`
	Fuel        string  `json:"fuel"`
	TankLevel   int32   `json:"tank_level"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	PricePerDay float64 `json:"price_per_day"`

	Radio    bool  `json:"radio"`
	GPS      bool  `json:"gps"`
	MP3      bool  `json:"mp3"`
	CD       bool  `json:"cd"`
	KeyCount int32 `json:"key_count"`

	OdometerStart  int32 `json:"odometer_start"`
	OdometerReturn int32 `json:"odometer_return"`

	RoadTax2026 bool `json:"road_tax_2026"`
	RoadTax2027 bool `json:"road_tax_2027"`
	RoadTax2028 bool `json:"road_tax_2028"`
	RoadTax2029 bool `json:"road_tax_2029"`

	InsuranceStart *time.Time `json:"insurance_start,omitempty"`
	InsuranceEnd   *time.Time `json:"insurance_end,omitempty"`

	OilChangeIntervalKM int32    `json:"oil_change_interval_km"`
	Remarks             string   `json:"remarks"`
	Damages             []string `json:"damages"`
	Available           bool     `json:"available"`
}

// PartnerSnapshot is the operator organization copy embedded in a contract
// header (the "loueur" block of the printed document).
type PartnerSnapshot struct {
	PartnerID   int32         `json:"partner_id"`
	CompanyName string        `json:"company_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	LogoURL     string        `json:"logo_url,omitempty"`
	Country     string        `json:"country"`
	City        string        `json:"city"`
	Role        PartnerRole   `json:"role"`
	Status      PartnerStatus `json:"status"`
}

// RentalInfo holds the rental period, locations and the pricing result
// computed at build time.
type RentalInfo struct {
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	StartLocation string    `json:"start_location"`
	EndLocation   string    `json:"end_location"`
	PricePerDay   float64   `json:"price_per_day"`
	RentalDays    int32     `json:"rental_days"`
	TotalPrice    float64   `json:"total_price"`
}

type ContractMetadata struct {
	CreatedBy int32     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Contract is the persisted aggregate. It exclusively owns its snapshots;
// they share no storage with the live Client/Vehicle/Partner records.
type Contract struct {
	ID               int32                 `json:"id"`
	ContractNumber   string                `json:"contract_number"`
	PartnerID        int32                 `json:"partner_id"`
	PartnerInfo      PartnerSnapshot       `json:"partner_info"`
	ClientInfo       ClientSnapshot        `json:"client_info"`
	SecondDriverInfo *SecondDriverSnapshot `json:"second_driver_info,omitempty"`
	VehicleInfo      VehicleSnapshot       `json:"vehicle_info"`
	RentalInfo       RentalInfo            `json:"rental_info"`
	Status           ContractStatus        `json:"status"`
	Metadata         ContractMetadata      `json:"metadata"`
	UpdatedOn        time.Time             `json:"updated_on"`
}

// SnapshotClient copies the contract-relevant subset of a live client.
func SnapshotClient(c Client) ClientSnapshot {
	return ClientSnapshot{
		ClientID:         c.ID,
		LastName:         c.LastName,
		FirstName:        c.FirstName,
		BirthDate:        cloneTime(c.BirthDate),
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		Passport:         c.Passport,
		CIN:              c.CIN,
		LicenseNumber:    c.LicenseNumber,
		LicenseIssueDate: cloneTime(c.LicenseIssueDate),
	}
}

// SnapshotVehicle copies the descriptive fields of a live vehicle,
// including a private copy of the damage list.
func SnapshotVehicle(v Vehicle) VehicleSnapshot {
	return VehicleSnapshot{
		VehicleID:           v.ID,
		Name:                v.Name,
		Type:                v.Type,
		Matricule:           v.Matricule,
		Gearbox:             v.Gearbox,
		Fuel:                v.Fuel,
		TankLevel:           v.TankLevel,
		Description:         v.Description,
		ImageURL:            v.ImageURL,
		PricePerDay:         v.PricePerDay,
		Radio:               v.Radio,
		GPS:                 v.GPS,
		MP3:                 v.MP3,
		CD:                  v.CD,
		KeyCount:            v.KeyCount,
		OdometerStart:       v.OdometerStart,
		OdometerReturn:      v.OdometerReturn,
		RoadTax2026:         v.RoadTax2026,
		RoadTax2027:         v.RoadTax2027,
		RoadTax2028:         v.RoadTax2028,
		RoadTax2029:         v.RoadTax2029,
		InsuranceStart:      cloneTime(v.InsuranceStart),
		InsuranceEnd:        cloneTime(v.InsuranceEnd),
		OilChangeIntervalKM: v.OilChangeIntervalKM,
		Remarks:             v.Remarks,
		Damages:             append([]string(nil), v.Damages...),
		Available:           v.Available,
	}
}

// SnapshotPartner copies the operator organization header fields.
func SnapshotPartner(p Partner) PartnerSnapshot {
	return PartnerSnapshot{
		PartnerID:   p.ID,
		CompanyName: p.CompanyName,
		Email:       p.Email,
		Phone:       p.Phone,
		LogoURL:     p.LogoURL,
		Country:     p.Country,
		City:        p.City,
		Role:        p.Role,
		Status:      p.Status,
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
