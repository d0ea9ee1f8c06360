package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable maps a transport type to its price per kilometre. It is built once
// and never modified.
type RateTable struct {
	names []string
	rates map[string]decimal.Decimal
}

// Rate is one entry of a RateTable.
type Rate struct {
	Name  string
	PerKM decimal.Decimal
}

// NewRateTable builds a table from rates. Names are stored lowercase and keep
// the given order.
func NewRateTable(rates ...Rate) RateTable {
	t := RateTable{rates: make(map[string]decimal.Decimal, len(rates))}
	for _, r := range rates {
		name := strings.ToLower(strings.TrimSpace(r.Name))
		if _, dup := t.rates[name]; !dup {
			t.names = append(t.names, name)
		}
		t.rates[name] = r.PerKM
	}
	return t
}

// DefaultRates is the fixed transport tariff.
func DefaultRates() RateTable {
	return NewRateTable(
		Rate{Name: "bus", PerKM: decimal.NewFromInt(2)},
		Rate{Name: "train", PerKM: decimal.RequireFromString("1.5")},
		Rate{Name: "cab", PerKM: decimal.NewFromInt(10)},
		Rate{Name: "flight", PerKM: decimal.NewFromInt(6)},
	)
}

// Lookup finds the rate for a transport type, ignoring case and surrounding space.
func (t RateTable) Lookup(transportType string) (decimal.Decimal, bool) {
	r, ok := t.rates[strings.ToLower(strings.TrimSpace(transportType))]
	return r, ok
}

// Names returns the transport types in table order.
func (t RateTable) Names() []string {
	return append([]string(nil), t.names...)
}

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// TransportCost is distanceKM * rate truncated toward zero: 7 km at 1.5 costs 10.
func TransportCost(distanceKM int64, rate decimal.Decimal) (int64, error) {
	cost := decimal.NewFromInt(distanceKM).Mul(rate).Truncate(0)
	if cost.GreaterThan(maxAmount) {
		return 0, ErrAmountOverflow
	}
	return cost.IntPart(), nil
}
