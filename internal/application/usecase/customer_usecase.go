package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const defaultStoreTimeout = 5 * time.Second

// CustomerUseCase casos de uso CRUD y búsqueda para clientes.
// Cada llamada al store lleva un plazo máximo (timeout) sobre el contexto de la petición.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	timeout time.Duration
}

// NewCustomerUseCase construye el caso de uso. timeout <= 0 aplica el valor por defecto.
func NewCustomerUseCase(repo repository.CustomerRepository, timeout time.Duration) *CustomerUseCase {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &CustomerUseCase{repo: repo, timeout: timeout}
}

// Create crea un nuevo cliente. El ID lo asigna el store.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	now := time.Now()
	customer := &entity.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Address:     in.Address,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes (sin paginación; contrato heredado).
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Search devuelve los clientes cuyo nombre, apellido o email contiene term.
func (uc *CustomerUseCase) Search(ctx context.Context, term string) ([]dto.CustomerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	list, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update sobrescribe los campos presentes en la petición y deja intactos los demás.
// Devuelve nil si el cliente no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	customer, err := uc.repo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		customer.PhoneNumber = *in.PhoneNumber
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		if err == domain.ErrNotFound {
			// Borrado entre la lectura y la escritura: mismo contrato que ausente.
			return nil, nil
		}
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID y devuelve el registro eliminado (nil si no existía).
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	customer, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		CustomerID:  c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address:     c.Address,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
