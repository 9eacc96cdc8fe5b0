package pricing

import (
	"strings"

	"wegorent-backend/internal/domain"
)

// TransferFare looks up the fare for a pickup/dropoff pair in a transfer
// vehicle's route table. Matching is case-insensitive and ignores
// surrounding whitespace, since routes are operator-entered free text.
//
// A roundtrip fare is one-way + return; when no return price is configured
// the same one-way price is assumed in both directions.
func TransferFare(v domain.TransferVehicle, pickup, dropoff string, trip domain.TripType) (float64, bool) {
	for _, route := range v.Routes {
		if !routeMatches(route, pickup, dropoff) {
			continue
		}
		if trip == domain.TripTypeRoundtrip {
			if route.ReturnPrice > 0 {
				return route.OneWayPrice + route.ReturnPrice, true
			}
			return route.OneWayPrice * 2, true
		}
		return route.OneWayPrice, true
	}
	return 0, false
}

func routeMatches(route domain.TransferRoute, pickup, dropoff string) bool {
	return strings.EqualFold(strings.TrimSpace(route.Pickup), strings.TrimSpace(pickup)) &&
		strings.EqualFold(strings.TrimSpace(route.Dropoff), strings.TrimSpace(dropoff))
}
