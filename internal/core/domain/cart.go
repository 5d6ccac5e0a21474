package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	productKey  = "product"
	quantityKey = "quantity"
	idKey       = "id"
)

// CartItem is the value under a cart line's "product" key. Every member the
// client sent is kept as raw JSON; only the nested product's id and the
// quantity are read. Members that cannot be read leave ProductID empty or
// Quantity at zero, so such an item never matches or increments.
type CartItem struct {
	ProductID ID
	Quantity  int

	fields  map[string]json.RawMessage
	opaque  json.RawMessage // set when the value was not a JSON object
	sentQty int
}

// CartLine is one entry of a user's cart, stored as the client submitted it.
type CartLine struct {
	Item CartItem

	hasItem bool
	fields  map[string]json.RawMessage // members other than "product"
}

// NewCartLine builds {"product":{"product":{"id":id},"quantity":quantity}}.
func NewCartLine(id ID, quantity int) CartLine {
	product, _ := json.Marshal(map[string]ID{idKey: id})
	qty, _ := json.Marshal(quantity)
	return CartLine{
		Item: CartItem{
			ProductID: id,
			Quantity:  quantity,
			fields:    map[string]json.RawMessage{productKey: product, quantityKey: qty},
			sentQty:   quantity,
		},
		hasItem: true,
	}
}

// ProductID returns the identifier of the product this line refers to.
func (l CartLine) ProductID() ID { return l.Item.ProductID }

// UnmarshalJSON accepts any JSON object.
func (l *CartLine) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("cart line: %w", err)
	}
	*l = CartLine{}
	if raw, ok := fields[productKey]; ok {
		l.Item = decodeItem(raw)
		l.hasItem = true
		delete(fields, productKey)
	}
	l.fields = fields
	return nil
}

// MarshalJSON re-emits the members that were received. Quantity is written
// back only when it changed.
func (l CartLine) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(l.fields)+1)
	for k, v := range l.fields {
		out[k] = v
	}
	if l.hasItem {
		item, err := json.Marshal(l.Item)
		if err != nil {
			return nil, err
		}
		out[productKey] = item
	}
	return json.Marshal(out)
}

func (i CartItem) MarshalJSON() ([]byte, error) {
	if i.opaque != nil {
		return i.opaque, nil
	}
	out := make(map[string]json.RawMessage, len(i.fields)+1)
	for k, v := range i.fields {
		out[k] = v
	}
	if i.Quantity != i.sentQty {
		qty, err := json.Marshal(i.Quantity)
		if err != nil {
			return nil, err
		}
		out[quantityKey] = qty
	}
	return json.Marshal(out)
}

func decodeItem(raw json.RawMessage) CartItem {
	fields, err := decodeObject(raw)
	if err != nil {
		return CartItem{opaque: raw}
	}
	item := CartItem{fields: fields}
	if product, err := decodeObject(fields[productKey]); err == nil {
		var id ID
		if json.Unmarshal(product[idKey], &id) == nil {
			item.ProductID = id
		}
	}
	if qty, ok := wholeNumber(fields[quantityKey]); ok {
		item.Quantity = qty
		item.sentQty = qty
	}
	return item
}

// wholeNumber reads an integral JSON number, or a string holding one.
func wholeNumber(raw json.RawMessage) (int, bool) {
	if raw == nil {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// decodeObject splits a JSON object into its raw members. null and absent
// values decode to an empty object.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	if data == nil {
		return map[string]json.RawMessage{}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

// Cart is the ordered list of a user's cart lines.
type Cart []CartLine

// Clone returns a copy of c. The result is never nil so it always encodes
// as a JSON array. Raw members are shared; they are never modified in place.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Without returns the lines whose product ID differs from id.
func (c Cart) Without(id ID) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID() != id {
			out = append(out, line)
		}
	}
	return out
}

// IncrementMatching returns only the lines that refer to id and hold a
// quantity of at least one, each with its quantity raised by one. Every other
// line is dropped from the result.
func (c Cart) IncrementMatching(id ID) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID() == id && line.Item.Quantity >= 1 {
			line.Item.Quantity++
			out = append(out, line)
		}
	}
	return out
}
