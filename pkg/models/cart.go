package models

// CartItem is one selected product line inside a customer's cart. Within a
// cart no two items share a ProductID.
type CartItem struct {
	ProductID string  `firestore:"productId" json:"productId"`
	Title     string  `firestore:"title" json:"title"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
	Price     float64 `firestore:"price" json:"price"`
	Image     string  `firestore:"image" json:"image"`
	ShopID    string  `firestore:"shopId" json:"shopId"`
}

// Cart is the single pending cart per customer, keyed by the customer uid.
type Cart struct {
	OwnerID string     `firestore:"-" json:"ownerId"`
	Items   []CartItem `firestore:"items" json:"items"`
}
