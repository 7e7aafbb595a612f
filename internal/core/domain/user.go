package domain

import "time"

// User is an account of a laundry shop owner or operator.
type User struct {
	ID        uint64
	Login     string
	Password  string
	ShopName  string
	Verified  bool
	CreatedAt time.Time
}
