package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	litersPlaces   = 3
	currencyPlaces = 2
)

type FuelPrice struct {
	ID         int64
	FuelTypeID int64
	FuelType   string
	Price      decimal.Decimal // per liter
	ValidUntil time.Time
}

// ValidAt reports whether the price may be used at t. Prices without a validity date never expire.
func (p FuelPrice) ValidAt(t time.Time) bool {
	return p.ValidUntil.IsZero() || !t.After(p.ValidUntil)
}

// CurrentPrice picks the price record in force at t for the fuel type: the valid one with the latest
// validity date, ties broken by the higher ID.
func CurrentPrice(prices []FuelPrice, fuelTypeID int64, t time.Time) (FuelPrice, bool) {
	var (
		best  FuelPrice
		found bool
	)

	for _, p := range prices {
		if p.FuelTypeID != fuelTypeID || !p.ValidAt(t) || !p.Price.IsPositive() {
			continue
		}

		if !found || laterPrice(p, best) {
			best = p
			found = true
		}
	}

	return best, found
}

func laterPrice(a, b FuelPrice) bool {
	switch {
	case a.ValidUntil.IsZero() && !b.ValidUntil.IsZero():
		return true
	case !a.ValidUntil.IsZero() && b.ValidUntil.IsZero():
		return false
	case a.ValidUntil.Equal(b.ValidUntil):
		return a.ID > b.ID
	default:
		return a.ValidUntil.After(b.ValidUntil)
	}
}

// Estimation previews what the pump should dispense. It never constrains the settlement.
type Estimation struct {
	FillTank        bool
	Limit           decimal.NullDecimal
	PricePerLiter   decimal.NullDecimal
	EstimatedLiters decimal.NullDecimal
}

// Estimate converts the requisition limit into liters at the given price.
// Liters are truncated to pump display precision so the estimate never costs more than the limit.
func Estimate(req Requisition, price *FuelPrice) Estimation {
	est := Estimation{
		FillTank: req.FillTank,
		Limit:    req.Limit,
	}

	if price == nil || !price.Price.IsPositive() {
		return est
	}

	est.PricePerLiter = decimal.NewNullDecimal(price.Price)

	if req.FillTank || !req.Limit.Valid || !req.Limit.Decimal.IsPositive() {
		return est
	}

	liters := req.Limit.Decimal.Div(price.Price).Truncate(litersPlaces)
	est.EstimatedLiters = decimal.NewNullDecimal(liters)

	return est
}

// UnitPrice returns amount / liters at full precision. Use RoundCurrency for display.
func UnitPrice(amount, liters decimal.Decimal) (decimal.Decimal, error) {
	if !liters.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: liters dispensed must be positive, got %s", ErrValidation, liters)
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: total amount must be positive, got %s", ErrValidation, amount)
	}

	return amount.Div(liters), nil
}

func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

func RoundLiters(d decimal.Decimal) decimal.Decimal {
	return d.Round(litersPlaces)
}
