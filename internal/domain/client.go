package domain

import "time"

// Client is a live directory record for a renter. Contracts never reference
// it directly; they embed a ClientSnapshot copied at creation time.
type Client struct {
	ID               int32      `json:"id"`
	PartnerID        int32      `json:"partner_id"`
	LastName         string     `json:"last_name"`
	FirstName        string     `json:"first_name"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Address          string     `json:"address"`
	Passport         string     `json:"passport"`
	CIN              string     `json:"cin"`
	LicenseNumber    string     `json:"license_number"`
	LicenseIssueDate *time.Time `json:"license_issue_date,omitempty"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        time.Time  `json:"updated_on"`
}
