package cart

import (
	"github.com/shopspring/decimal"

	"github.com/wingseng/parts-catalog/internal/models"
)

// LineItem is one product in a quote request. Display fields are snapshotted
// from the product at the moment it was added; later catalog edits do not
// reach into open carts.
type LineItem struct {
	ProductID  string   `json:"product_id"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	PartNumber string   `json:"part_number"`
	Price      *float64 `json:"price"`
	Currency   string   `json:"currency"`
	ImageURL   string   `json:"image_url"`
	Quantity   int      `json:"quantity"`
}

// Cart aggregates quote line items for one browsing session. At most one line
// item exists per product id. Not safe for concurrent use; Store serializes
// access.
type Cart struct {
	items []LineItem
}

func (c *Cart) find(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add inserts p with quantity 1, or bumps the quantity when the product is
// already in the cart.
func (c *Cart) Add(p models.Product) {
	if i := c.find(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	// Copy the price value so later edits to the catalog row cannot alias
	// into the snapshot.
	var price *float64
	if p.Price != nil {
		v := *p.Price
		price = &v
	}
	c.items = append(c.items, LineItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Brand:      p.Brand,
		PartNumber: p.PartNumber,
		Price:      price,
		Currency:   p.Currency,
		ImageURL:   p.PrimaryImageURL,
		Quantity:   1,
	})
}

// UpdateQuantity sets the absolute quantity for a product. Anything below 1
// removes the line item.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	if i := c.find(productID); i >= 0 {
		c.items[i].Quantity = qty
	}
}

// Remove deletes the line item; removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	if i := c.find(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Total sums price x quantity over all line items, counting missing prices
// as zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		if it.Price == nil {
			continue
		}
		line := decimal.NewFromFloat(*it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Clear() { c.items = nil }
