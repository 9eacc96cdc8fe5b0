// Package pricing implements the rental price computation shared by the
// contract, smart-contract and transfer paths. Everything here is a pure
// function: the dashboard recomputes a quote on every form change, so these
// must be safe to call repeatedly and must never fail on partial input.
package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RentalPeriod is the requested rental window. Start and end may arrive in
// either order; the quote uses the absolute difference. Swapping them yields
// the same day count on purpose (see Quote).
type RentalPeriod struct {
	Start time.Time
	End   time.Time
}

// RateTerms are the per-day price plus flat add-ons applied once per
// contract (VAT, stay tax, other taxes).
type RateTerms struct {
	PricePerDay float64
	FlatTaxes   []float64
}

// Quote is the billable day count and total price for a period and rate.
type Quote struct {
	RentalDays int32
	TotalPrice float64
}

// Amount parses a form-supplied numeric string. Missing or unparseable
// values coerce to zero instead of erroring: a field-by-field reactive
// recompute must never interrupt the operator mid-typing.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// QuoteRental computes the billable day count and total price.
//
// Days are the duration between the two timestamps, in whole days rounded
// up, with a minimum of one: a same-day booking is still charged one day.
// A reversed period (end before start) produces the same positive count as
// the swapped one; the legacy system behaves this way and callers depend on
// it, so rejecting reversed periods is a caller decision, not ours.
func QuoteRental(period RentalPeriod, terms RateTerms) Quote {
	diff := period.End.Sub(period.Start)
	if diff < 0 {
		diff = -diff
	}
	days := int32(math.Ceil(diff.Hours() / 24))
	if days == 0 {
		days = 1
	}

	total := float64(days) * terms.PricePerDay
	for _, tax := range terms.FlatTaxes {
		total += tax
	}

	return Quote{RentalDays: days, TotalPrice: total}
}

// RoundCurrency rounds to two decimals for display. Internal computation
// keeps full floating precision; only the presented total is rounded.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
