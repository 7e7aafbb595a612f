package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// OrderStatus holds the canonical (Indonesian) display spelling of a
// lifecycle state. Synonyms are normalized via CanonicalStatus.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "Baru"
	OrderStatusProcessing OrderStatus = "Diproses"
	OrderStatusCompleted  OrderStatus = "Selesai"
	OrderStatusPickedUp   OrderStatus = "Diambil"
)

// OrderItem is one service line of an order. Subtotal is WeightKg * PricePerKg,
// fixed when the item is added.
type OrderItem struct {
	ServiceName string
	WeightKg    decimal.Decimal
	PricePerKg  decimal.Decimal
	Subtotal    decimal.Decimal
}

const PaymentStatusPaid = "lunas"

type Payment struct {
	ID     string
	Date   time.Time
	Amount decimal.Decimal
	Method string
	Status string
}

type Order struct {
	ID         uint64
	UserID     uint64
	Customer   CustomerInfo
	OrderDate  time.Time
	Status     OrderStatus
	Items      []OrderItem
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Payments   []Payment
}

// Validate checks the creation invariants: a named customer, at least one
// item, and positive weight and non-negative price on every item.
func (o *Order) Validate() error {
	if o.Customer.Name == "" {
		return ErrCustomerNameRequired
	}
	if len(o.Items) == 0 {
		return ErrOrderItemsRequired
	}
	for _, item := range o.Items {
		if item.WeightKg.Sign() <= 0 {
			return ErrItemWeightInvalid
		}
		if item.PricePerKg.Sign() < 0 {
			return ErrItemPriceInvalid
		}
	}
	return nil
}
