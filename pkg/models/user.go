package models

import (
	"github.com/electromart/electromart-backend/pkg/enums"
)

// User represents the canonical identity document, keyed by the Firebase uid.
type User struct {
	UID   string     `firestore:"uid" json:"uid"`
	Email string     `firestore:"email" json:"email"`
	Name  string     `firestore:"name" json:"name"`
	Role  enums.Role `firestore:"role" json:"role"`
}
