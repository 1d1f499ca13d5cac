package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeEmptyCart, ErrorCode(ErrEmptyCart))
	assert.Equal(t, ErrCodeOrderNotFound, ErrorCode(fmt.Errorf("lookup: %w", ErrOrderNotFound)))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
	assert.Equal(t, "", ErrorCode(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrShopNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrCartItemNotFound)))
	assert.False(t, IsNotFound(ErrUnauthorised))
	assert.False(t, IsNotFound(errors.New("not found")))
}

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 2, Price: decimal.RequireFromString("2.50")},
	}
	assert.True(t, decimal.RequireFromString("25.00").Equal(OrderTotal(items)))
	assert.True(t, OrderTotal(nil).IsZero())
}
