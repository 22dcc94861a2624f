package entity

import "time"

// Vendor representa un proveedor de productos.
type Vendor struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
