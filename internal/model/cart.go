package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity is the largest quantity a single cart line can hold,
// the range of the quantity column.
const MaxLineQuantity = math.MaxInt32

// Cart is a buyer's pre-checkout basket. Each user has at most one.
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem is a single product line in a cart. A cart holds at most one line per product.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CartID    uuid.UUID `json:"cartId" db:"cart_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AddCartItemRequest represents the request payload for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request payload for changing a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLine is a cart item priced at the product's current price.
// ProductName is empty and the prices are zero when the product no longer exists.
type CartLine struct {
	CartItem
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse is the cart with its priced lines and their current total.
// The total is indicative; checkout re-reads prices under lock.
type CartResponse struct {
	Cart  *Cart           `json:"cart"`
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
