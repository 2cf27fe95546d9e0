package domain

import (
	"errors"
	"time"

	"github.com/dwikikusuma/tuslibros/pkg/safemath"
)

// ErrQuantityOverflow means the accumulated units no longer fit an int64.
var ErrQuantityOverflow = errors.New("cart quantity overflow")

type CartItem struct {
	ProductID string
	Quantity  int64
}

// Cart is a session cart owned by a single user. Items keep the order in
// which each product was first added.
type Cart struct {
	ID        string
	Owner     string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Add increments the units of productID, appending a new item the first
// time the product is seen. The cart is left unchanged on overflow.
func (c *Cart) Add(productID string, quantity int64) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			total, err := safemath.Add(c.Items[i].Quantity, quantity)
			if err != nil {
				return ErrQuantityOverflow
			}
			c.Items[i].Quantity = total
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (c Cart) Units(productID string) int64 {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]CartItem(nil), c.Items...)
	return out
}
