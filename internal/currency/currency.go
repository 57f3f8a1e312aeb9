// Package currency converts and formats trip amounts between the base
// currency the itinerary is authored in and the alternate display currency.
//
// Rates are fixed constants. There is no rate lookup of any kind.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an ISO 4217 code from the closed set this package knows.
type Currency string

const (
	JPY Currency = "JPY"
	INR Currency = "INR"
)

// Base is the currency every stored amount is authored in.
const Base = JPY

// ErrUnknownCurrency is returned by Parse for codes outside the closed set.
var ErrUnknownCurrency = errors.New("unknown currency")

type unit struct {
	symbol string
	locale language.Tag
}

var units = map[Currency]unit{
	JPY: {symbol: "¥", locale: language.MustParse("en-JP")},
	INR: {symbol: "₹", locale: language.MustParse("en-IN")},
}

// Parse maps a case-insensitive code to a Currency.
func Parse(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := units[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// Symbol returns the display symbol, or the code itself for unknown values.
func (c Currency) Symbol() string {
	if u, ok := units[c]; ok {
		return u.symbol
	}
	return string(c)
}

// Other returns the opposite currency of the pair, used by the toggle.
func (c Currency) Other() Currency {
	if c == INR {
		return JPY
	}
	return INR
}

// Rates holds the two stored conversion constants. They are independent
// values and are not expected to be exact reciprocals.
type Rates struct {
	JPYToINR float64
	INRToJPY float64
}

// DefaultRates are the constants the trip budget was estimated with.
var DefaultRates = Rates{
	JPYToINR: 0.56,
	INRToJPY: 1.79,
}

// Rate returns the multiplier for from→to. Identical or unrecognized pairs
// get 1 so the amount passes through unconverted.
func (r Rates) Rate(from, to Currency) float64 {
	switch {
	case from == JPY && to == INR:
		return r.JPYToINR
	case from == INR && to == JPY:
		return r.INRToJPY
	default:
		return 1
	}
}

// Converter formats amounts for display in either currency.
type Converter struct {
	rates    Rates
	printers map[Currency]*message.Printer
}

// NewConverter creates a converter over a fixed rate table.
func NewConverter(rates Rates) *Converter {
	printers := make(map[Currency]*message.Printer, len(units))
	for c, u := range units {
		printers[c] = message.NewPrinter(u.locale)
	}
	return &Converter{rates: rates, printers: printers}
}

// Rates returns the rate table the converter was built with.
func (c *Converter) Rates() Rates {
	return c.rates
}

// Amount converts amount from one currency to another and rounds the
// result half-up to a whole unit.
func (c *Converter) Amount(amount float64, from, to Currency) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if from == to {
		return Round(amount)
	}
	return Round(amount * c.rates.Rate(from, to))
}

// Convert converts amount and renders it with the target currency's symbol
// and digit grouping, e.g. "₹10,728". A zero amount renders as "₹0".
//
// Negative amounts are not validated; the output for them is unspecified.
func (c *Converter) Convert(amount float64, from, to Currency) string {
	return c.formatWhole(c.Amount(amount, from, to), to)
}

// Format renders an amount already expressed in cur.
func (c *Converter) Format(amount float64, cur Currency) string {
	return c.Convert(amount, cur, cur)
}

func (c *Converter) formatWhole(n int64, cur Currency) string {
	p, ok := c.printers[cur]
	if !ok {
		return fmt.Sprintf("%d", n)
	}
	return cur.Symbol() + p.Sprintf("%d", n)
}

// Round rounds half-up to the nearest integer.
func Round(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
