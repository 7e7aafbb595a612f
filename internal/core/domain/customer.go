package domain

// CustomerInfo is the contact data copied into an order at creation time.
// Editing the customer afterwards does not rewrite past orders.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

type Customer struct {
	ID     uint64
	UserID uint64
	CustomerInfo
}
