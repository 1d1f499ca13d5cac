package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Buyers own carts and orders; sellers own shops.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
