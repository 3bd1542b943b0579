package models

import "time"

// Product is a vendor listing. ID and ShopID never change after creation;
// rating fields are maintained by the review aggregation recompute.
type Product struct {
	ID            string    `firestore:"-" json:"id"`
	Title         string    `firestore:"title" json:"title"`
	Description   string    `firestore:"description" json:"description"`
	Price         float64   `firestore:"price" json:"price"`
	Stock         int       `firestore:"stock" json:"stock"`
	Images        []string  `firestore:"images" json:"images"`
	Category      string    `firestore:"category" json:"category"`
	SubCategory   string    `firestore:"subCategory" json:"subCategory"`
	Manufacturer  string    `firestore:"manufacturer" json:"manufacturer"`
	Features      string    `firestore:"features" json:"features"`
	ShopID        string    `firestore:"shopId" json:"shopId"`
	VendorID      string    `firestore:"vendorId" json:"vendorId"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
	AverageRating float64   `firestore:"averageRating" json:"averageRating"`
	ReviewCount   int       `firestore:"reviewCount" json:"reviewCount"`
}
