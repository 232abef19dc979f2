package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient is a raw material (flour, water, salt, ...). Reference data:
// the consumption engine reads it, never mutates it.
type Ingredient struct {
	ID          int64
	Name        string
	Unit        string // kg, l, ks
	KiloPerUnit decimal.Decimal
	Active      bool
	CreatedAt   time.Time
}
