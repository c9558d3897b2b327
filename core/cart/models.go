package cart

import "errors"

var (
	// errors
	ErrInvalidItem     = errors.New("invalid cart item")
	ErrInvalidQuantity = errors.New("quantity must be a whole number greater than zero")
	ErrNotFound        = errors.New("item not found in cart")
	ErrStorage         = errors.New("cart storage failure")
)

// Item is one line entry of the persisted cart, identified by a stable ID.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageRef  string  `json:"image,omitempty"`
}

// Candidate is an unvalidated item, either constructed by a storefront
// surface from whatever the catalog handed it, or read back from the
// persisted payload. Field types are loose on purpose: surfaces and old
// payloads routinely carry numbers where strings belong and vice versa,
// and Normalize is the single place that straightens them out.
type Candidate struct {
	ID        interface{} `json:"id"`
	Name      interface{} `json:"name"`
	UnitPrice interface{} `json:"unit_price"`
	Quantity  interface{} `json:"quantity,omitempty"`
	ImageRef  interface{} `json:"image,omitempty"`
}

func (it Item) candidate() Candidate {
	c := Candidate{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Quantity:  it.Quantity,
	}
	if it.ImageRef != "" {
		c.ImageRef = it.ImageRef
	}
	return c
}

// Store is the durable key-value holder of the serialized cart: a single
// JSON array document. It is shared by every surface in this process and
// possibly by sibling processes; Read/Write offer no cross-process
// atomicity, which is why the repair pass exists.
type Store interface {
	// Read returns the raw persisted payload, or (nil, nil) when no cart
	// has ever been written.
	Read() ([]byte, error)
	Write(payload []byte) error
	Clear() error
}
