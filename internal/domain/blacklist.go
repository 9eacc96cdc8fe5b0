package domain

import "time"

// BlacklistEntry flags an individual by client reference, national id (CIN)
// or passport number. An active match blocks contract creation.
type BlacklistEntry struct {
	ID        int32     `json:"id"`
	PartnerID int32     `json:"partner_id"`
	ClientID  *int32    `json:"client_id,omitempty"`
	CIN       string    `json:"cin,omitempty"`
	Passport  string    `json:"passport,omitempty"`
	Reason    string    `json:"reason"`
	Active    bool      `json:"active"`
	CreatedOn time.Time `json:"created_on"`
}
