package entity

// Cart holds the listings selected for purchase. Each entry is a full
// snapshot of the listing at add time, keyed by listing ID with at most one
// entry per ID.
type Cart struct {
	Items []Listing `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: make([]Listing, 0)}
}

func (c *Cart) Contains(id string) bool {
	for _, item := range c.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Add appends a snapshot of the listing. Adding an ID that is already present
// is a no-op; it reports whether the cart changed.
func (c *Cart) Add(l Listing) bool {
	if c.Contains(l.ID) {
		return false
	}
	c.Items = append(c.Items, l)
	return true
}

// Remove deletes the entry with the given ID, reporting whether it was
// present. Removing an absent ID is not an error.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = make([]Listing, 0)
}

// Total is the sum of snapshot prices over the current items.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price
	}
	return sum
}
