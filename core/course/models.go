package course

import "strconv"

// Course is one purchasable catalog record.
type Course struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Price        float64 `json:"price"`
	ListPrice    float64 `json:"list_price,omitempty"`
	ImageRef     string  `json:"image,omitempty"`
	Category     string  `json:"category,omitempty"`
	Duration     string  `json:"duration,omitempty"`
	StudentCount string  `json:"student_count,omitempty"`
}

// CartID is the stable identity a course carries into the cart.
func (c Course) CartID() string {
	return strconv.Itoa(c.ID)
}
