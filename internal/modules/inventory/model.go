package inventory

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Status is the stock state of an item as recorded in the store.
type Status string

// Price holds the NUMERIC price column as its decimal text, so the stored
// scale survives ("19.50" stays 19.50). It is emitted as a JSON number.
type Price = json.Number

// Item is an inventory row as listed by GET /api. Supplier is omitted.
type Item struct {
	ID          int64      `json:"id"`
	ProductName string     `json:"product_name"`
	Category    string     `json:"category"`
	Price       Price      `json:"price"`
	SKU         string     `json:"sku"`
	Dimensions  Dimensions `json:"dimensions"`
	Status      Status     `json:"status"`
}

// ItemDetail is an inventory row including its supplier.
type ItemDetail struct {
	ID          int64      `json:"id"`
	ProductName string     `json:"product_name"`
	Category    string     `json:"category"`
	Price       Price      `json:"price"`
	SKU         string     `json:"sku"`
	Supplier    *string    `json:"supplier"`
	Dimensions  Dimensions `json:"dimensions"`
	Status      Status     `json:"status"`
}

// Dimensions holds the dimensions column. A JSON document is emitted as
// is; any other text is emitted as a JSON string, and NULL as null.
type Dimensions struct {
	raw   []byte
	valid bool
}

// Scan implements sql.Scanner.
func (d *Dimensions) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.raw, d.valid = nil, false
	case []byte:
		d.raw, d.valid = append([]byte(nil), v...), true
	case string:
		d.raw, d.valid = []byte(v), true
	default:
		return fmt.Errorf("dimensions: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Dimensions) Value() (driver.Value, error) {
	if !d.valid {
		return nil, nil
	}
	return string(d.raw), nil
}

// MarshalJSON implements json.Marshaler.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	if json.Valid(d.raw) {
		return d.raw, nil
	}
	return json.Marshal(string(d.raw))
}

// NewDimensions wraps a text value.
func NewDimensions(s string) Dimensions {
	return Dimensions{raw: []byte(s), valid: true}
}
