package entity

import "time"

// Customer representa un cliente de la tienda.
// El ID lo genera la base de datos (BIGSERIAL); Email es único a nivel de tabla.
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	Address     string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
