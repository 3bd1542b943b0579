package models

import "time"

// Review lives in a subcollection under its target (product or shop) and is
// keyed by the reviewer uid, which caps each reviewer at one review per target.
type Review struct {
	ReviewerID string    `firestore:"userId" json:"userId"`
	Rating     int       `firestore:"rating" json:"rating"`
	Comment    string    `firestore:"comment" json:"comment"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
