package domain

import "time"

type InsuranceStatus string

const (
	InsuranceStatusNone    InsuranceStatus = "no-insurance"
	InsuranceStatusPending InsuranceStatus = "pending"
	InsuranceStatusActive  InsuranceStatus = "active"
	InsuranceStatusExpired InsuranceStatus = "expired"
)

// Vehicle is a live fleet record. PricePerDay is the default daily rate used
// when the operator does not override it on the contract form.
type Vehicle struct {
	ID          int32   `json:"id"`
	PartnerID   int32   `json:"partner_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Matricule   string  `json:"matricule"`
	Gearbox     string  `json:"gearbox"`
	Fuel        string  `json:"fuel"`
	TankLevel   int32   `json:"tank_level"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	PricePerDay float64 `json:"price_per_day"`

	// Equipment flags
	Radio    bool  `json:"radio"`
	GPS      bool  `json:"gps"`
	MP3      bool  `json:"mp3"`
	CD       bool  `json:"cd"`
	KeyCount int32 `json:"key_count"`

	OdometerStart  int32 `json:"odometer_start"`
	OdometerReturn int32 `json:"odometer_return"`

	// Road tax paid flags per fiscal year
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

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// InsuranceStatusAt classifies the vehicle's insurance window relative to
// the given instant.
func (v *Vehicle) InsuranceStatusAt(now time.Time) InsuranceStatus {
	if v.InsuranceStart == nil || v.InsuranceEnd == nil {
		return InsuranceStatusNone
	}
	if now.Before(*v.InsuranceStart) {
		return InsuranceStatusPending
	}
	if now.After(*v.InsuranceEnd) {
		return InsuranceStatusExpired
	}
	return InsuranceStatusActive
}
