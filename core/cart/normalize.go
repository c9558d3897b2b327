package cart

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/jjyf27/redpro/core"
)

// Normalize enforces the item schema on a candidate: required fields must
// be present, id/name are coerced to strings, unit price and quantity to
// numbers, and a missing quantity defaults to 1. It is a pure transform
// used strictly on insert; the repair pass uses the lenient variant.
func Normalize(c Candidate) (Item, error) {
	var it Item

	id, ok := coerceString(c.ID)
	if !ok || id == "" {
		return it, invalidItem("id", "a non-empty id is required")
	}
	name, ok := coerceString(c.Name)
	if !ok || name == "" {
		return it, invalidItem("name", "a non-empty name is required")
	}
	price, ok := coerceFloat(c.UnitPrice)
	if !ok {
		return it, invalidItem("unit_price", "must be a finite number")
	}
	if price < 0 {
		return it, invalidItem("unit_price", "cannot be negative")
	}

	qty := 1
	if c.Quantity != nil {
		q, ok := coerceInt(c.Quantity)
		if !ok || q < 1 {
			return it, invalidItem("quantity", ErrInvalidQuantity.Error())
		}
		qty = q
	}

	it = Item{ID: id, Name: name, UnitPrice: price, Quantity: qty}
	if img, ok := coerceString(c.ImageRef); ok {
		it.ImageRef = img
	}
	return it, nil
}

// normalizeLenient is the repair-time variant: corrupt numerics acquire
// defaults (price 0, quantity 1) instead of failing, and an entry with no
// id falls back to its name as identity. Only an entry with no usable
// identity at all is discarded.
func normalizeLenient(c Candidate) (Item, bool) {
	id, _ := coerceString(c.ID)
	name, _ := coerceString(c.Name)
	if name == "" {
		return Item{}, false
	}
	if id == "" {
		id = name
	}

	price, ok := coerceFloat(c.UnitPrice)
	if !ok || price < 0 {
		price = 0
	}
	qty, ok := coerceInt(c.Quantity)
	if !ok || qty < 1 {
		qty = 1
	}

	it := Item{ID: id, Name: name, UnitPrice: price, Quantity: qty}
	if img, ok := coerceString(c.ImageRef); ok {
		it.ImageRef = img
	}
	return it, true
}

func invalidItem(field, text string) error {
	return errors.Wrap(
		core.NewValidationError(ErrInvalidItem, core.FieldError{Field: field, Error: text}),
		ErrInvalidItem.Error(),
	)
}

// coerceString accepts strings and numeric primitives; anything else fails.
func coerceString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return core.CleanString(s), true
	case float64:
		if s == math.Trunc(s) && !math.IsInf(s, 0) {
			return strconv.FormatInt(int64(s), 10), true
		}
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case json.Number:
		return s.String(), true
	default:
		return "", false
	}
}

// coerceFloat accepts numbers and numeric strings; NaN and infinities fail.
func coerceFloat(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(core.CleanString(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceInt accepts whole numbers in any of the shapes coerceFloat does.
func coerceInt(v interface{}) (int, bool) {
	f, ok := coerceFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
