package domain

import "github.com/govalues/decimal"

// ServiceItem is a priced entry of the shop's service catalog,
// e.g. "Cuci Setrika" at 9000 per kg.
type ServiceItem struct {
	ID         uint64
	UserID     uint64
	Name       string
	PricePerKg decimal.Decimal
	UnitLabel  string
}

// DefaultServices seeds a fresh catalog so a new shop can take orders
// right away.
func DefaultServices() []*ServiceItem {
	price := func(v int64) decimal.Decimal {
		d, _ := decimal.New(v, 0)
		return d
	}
	return []*ServiceItem{
		{Name: "Cuci Kering", PricePerKg: price(6000), UnitLabel: "kg"},
		{Name: "Cuci Setrika", PricePerKg: price(9000), UnitLabel: "kg"},
		{Name: "Setrika", PricePerKg: price(5000), UnitLabel: "kg"},
		{Name: "Cuci Express", PricePerKg: price(12000), UnitLabel: "kg"},
	}
}
