package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Document stores a value as a JSONB column
type Document[T any] struct {
	Data T
}

// Value implements the driver.Valuer interface for Document
func (d Document[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(d.Data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for Document
func (d *Document[T]) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return errors.New("null document")
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for Document")
	}
	return json.Unmarshal(bytes, &d.Data)
}

// Prices are the size-tiered prices of a menu item
type Prices struct {
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Prices      Prices   `json:"prices"`
	Toppings    []string `json:"toppings"`
	Category    string   `json:"category"`
}

type OrderItem struct {
	ItemName string   `json:"itemName"`
	Toppings []string `json:"toppings"`
	Category string   `json:"category"`
	Size     string   `json:"size"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	CreatedAt    time.Time   `json:"createdAt"`
}
