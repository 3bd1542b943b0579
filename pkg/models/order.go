package models

import "time"

// Order is an immutable snapshot of a cart at checkout time. Items are copied
// verbatim from the cart and never mutated afterwards.
type Order struct {
	ID        string     `firestore:"-" json:"id"`
	UserID    string     `firestore:"userId" json:"userId"`
	Items     []CartItem `firestore:"items" json:"items"`
	ShopID    string     `firestore:"shopId" json:"shopId"`
	Total     float64    `firestore:"total" json:"total"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
}
