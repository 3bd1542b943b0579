package models

import "time"

// Shop is a vendor storefront. The document id equals the owning vendor's uid,
// so one vendor owns at most one shop. Approved flips true only through the
// admin approval operation; AverageRating and ReviewCount are written only by
// the review aggregation recompute.
type Shop struct {
	VendorID       string     `firestore:"vendorId" json:"vendorId"`
	Name           string     `firestore:"name" json:"name"`
	Category       string     `firestore:"category" json:"category"`
	Description    string     `firestore:"description" json:"description"`
	WhatsappNumber string     `firestore:"whatsappNumber" json:"whatsappNumber"`
	Location       string     `firestore:"location" json:"location"`
	LogoURL        string     `firestore:"logoUrl" json:"logoUrl"`
	CoverPhotoURL  string     `firestore:"coverPhotoUrl" json:"coverPhotoUrl"`
	Approved       bool       `firestore:"approved" json:"approved"`
	ApprovedAt     *time.Time `firestore:"approvedAt" json:"approvedAt,omitempty"`
	UpdatedAt      time.Time  `firestore:"updatedAt" json:"updatedAt"`
	AverageRating  float64    `firestore:"averageRating" json:"averageRating"`
	ReviewCount    int        `firestore:"reviewCount" json:"reviewCount"`
}
