package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// Profile carries the storefront extras for a user, including the serialized
// cart snapshot used to restore the cart after login.
type Profile struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Phone        string
	Address1     string
	Address2     string
	City         string
	State        string
	ZipCode      string
	Country      string
	OldCart      string // JSON snapshot of the session cart
	DateModified time.Time
}
