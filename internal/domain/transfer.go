package domain

import "time"

type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundtrip TripType = "roundtrip"
)

// TransferRoute is one priced leg of a transfer vehicle's route table.
// ReturnPrice of zero means "not configured"; a roundtrip fare then falls
// back to twice the one-way price.
type TransferRoute struct {
	Pickup      string  `json:"pickup"`
	Dropoff     string  `json:"dropoff"`
	OneWayPrice float64 `json:"one_way_price"`
	ReturnPrice float64 `json:"return_price"`
}

// TransferVehicle is an airport-transfer vehicle with its route price table.
type TransferVehicle struct {
	ID        int32           `json:"id"`
	PartnerID int32           `json:"partner_id"`
	Title     string          `json:"title"`
	Capacity  int32           `json:"capacity"`
	Luggage   int32           `json:"luggage"`
	Routes    []TransferRoute `json:"routes"`
	CreatedOn time.Time       `json:"created_on"`
	UpdatedOn time.Time       `json:"updated_on"`
}

// TransferBooking is a confirmed transfer reservation with its computed fare.
type TransferBooking struct {
	ID         int32     `json:"id"`
	VehicleID  int32     `json:"vehicle_id"`
	Pickup     string    `json:"pickup"`
	Dropoff    string    `json:"dropoff"`
	TripType   TripType  `json:"trip_type"`
	PickupTime time.Time `json:"pickup_time"`
	Passengers int32     `json:"passengers"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Notes      string    `json:"notes"`
	Price      float64   `json:"price"`
	CreatedOn  time.Time `json:"created_on"`
}
