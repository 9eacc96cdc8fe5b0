package domain

import "time"

type PartnerStatus string

const (
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusSuspended PartnerStatus = "suspended"
)

type PartnerRole string

const (
	PartnerRoleAgency PartnerRole = "agency"
	PartnerRoleAdmin  PartnerRole = "admin"
)

// Partner is a tenant: the rental agency whose operators use the back office.
// Every client, vehicle and contract belongs to exactly one partner.
type Partner struct {
	ID           int32         `json:"id"`
	CompanyName  string        `json:"company_name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Phone        string        `json:"phone"`
	LogoURL      string        `json:"logo_url"`
	Country      string        `json:"country"`
	City         string        `json:"city"`
	Role         PartnerRole   `json:"role"`
	Status       PartnerStatus `json:"status"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}
