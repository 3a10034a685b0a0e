package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. El ID lo asigna la base de datos (RETURNING).
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, address, email, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING customer_id`
	err := r.q.QueryRow(ctx, query,
		customer.FirstName, customer.LastName, customer.Address, customer.Email,
		customer.PhoneNumber, customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, address, email, phone_number, created_at, updated_at
		FROM customers WHERE customer_id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por ID.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, address, email, phone_number, created_at, updated_at
		FROM customers ORDER BY customer_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Search devuelve los clientes cuyo nombre, apellido o email contiene term (subcadena, sin anclar).
func (r *CustomerRepo) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, address, email, phone_number, created_at, updated_at
		FROM customers
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name  ILIKE '%' || $1 || '%'
		   OR email      ILIKE '%' || $1 || '%'
		ORDER BY customer_id`
	rows, err := r.q.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Update sobrescribe los campos del cliente. No toca el ID.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $2, last_name = $3, address = $4, email = $5, phone_number = $6, updated_at = $7
		WHERE customer_id = $1`
	cmd, err := r.q.Exec(ctx, query,
		customer.ID, customer.FirstName, customer.LastName, customer.Address,
		customer.Email, customer.PhoneNumber, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID y devuelve la fila eliminada (nil si no existía).
func (r *CustomerRepo) Delete(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		DELETE FROM customers WHERE customer_id = $1
		RETURNING customer_id, first_name, last_name, address, email, phone_number, created_at, updated_at`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete customer: %w", err)
	}
	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
