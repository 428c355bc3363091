package domain

// CartLine is one item entry in a cart. Name and UnitPrice are captured
// from the catalog when the line is first added and never refreshed, so
// a later menu price change does not affect carts already holding the item.
type CartLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered sequence of lines; insertion order is first-add order.
// A cart holds at most one line per item id.
type Cart []CartLine

// AddLine merges quantity into the existing line for the item, or appends
// a new line capturing the item's current name and price. Quantity and
// item validity are the caller's responsibility.
func (c Cart) AddLine(item MenuItem, quantity int) Cart {
	for i := range c {
		if c[i].ItemID == item.ID {
			c[i].Quantity += quantity
			return c
		}
	}
	return append(c, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
}

// RemoveLine drops the line for itemID. Removing an absent item is a
// no-op, so removal is idempotent.
func (c Cart) RemoveLine(itemID string) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ItemID != itemID {
			out = append(out, line)
		}
	}
	return out
}

// Total is the sum of unit price times quantity over all lines.
// An empty cart totals zero.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Clone returns a copy sharing no memory with the receiver. Cloning a nil
// cart yields an empty, non-nil cart so it marshals as [] rather than null.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
