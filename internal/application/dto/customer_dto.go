package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. Ningún campo es obligatorio
// en esta capa; la unicidad del email la impone el store.
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateCustomerRequest entrada para actualizar un cliente. El ID viaja en el cuerpo
// (contrato heredado del PUT sin path param); solo se sobrescriben los campos presentes.
type UpdateCustomerRequest struct {
	CustomerID  int64   `json:"customer_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	CustomerID  int64     `json:"customer_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
