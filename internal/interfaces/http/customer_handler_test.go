package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de clientes
// ──────────────────────────────────────────────────────────────────────────────

// Crear responde 200 (contrato heredado, no 201) y el GET posterior devuelve
// exactamente los mismos campos.
func TestCustomerCreate_Responde200YPersiste(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	in := dto.CreateCustomerRequest{
		FirstName:   "Ana",
		LastName:    "García",
		Address:     "Calle 10 #4-21",
		Email:       "ana@example.com",
		PhoneNumber: "3001234567",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", in)
	require.Equal(t, http.StatusOK, resp.StatusCode, "crear cliente debe responder 200, no 201")

	var created dto.CustomerResponse
	decodeBody(t, resp, &created)
	require.NotZero(t, created.CustomerID, "el store debe asignar el ID")
	assert.Equal(t, in.FirstName, created.FirstName)
	assert.Equal(t, in.Email, created.Email)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.CustomerResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, created, got, "create seguido de getOne debe devolver el mismo registro campo a campo")
}

func TestCustomerCreate_EmailDuplicado_409(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	in := dto.CreateCustomerRequest{FirstName: "Ana", Email: "ana@example.com"}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", in)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/customers", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "email duplicado debe responder 409")

	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestCustomerGetByID_NoExiste_404(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers/99", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "customer not found!", errBody.Message)
}

// Update con cuerpo parcial: solo cambian los campos presentes, el resto queda igual.
func TestCustomerUpdate_MergeParcial(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{
		FirstName: "Luis", LastName: "Martínez", Address: "Cra 45", Email: "luis@example.com", PhoneNumber: "301",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	addr := "Nueva dirección 123"
	phone := "3029998877"
	resp = doJSON(t, app, http.MethodPut, "/api/v1/customers", dto.UpdateCustomerRequest{
		CustomerID: 1, Address: &addr, PhoneNumber: &phone,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.CustomerResponse
	decodeBody(t, resp, &updated)
	assert.Equal(t, addr, updated.Address)
	assert.Equal(t, phone, updated.PhoneNumber)
	assert.Equal(t, "Luis", updated.FirstName, "los campos no enviados no deben cambiar")
	assert.Equal(t, "luis@example.com", updated.Email, "los campos no enviados no deben cambiar")
}

func TestCustomerUpdate_NoExiste_404(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	name := "Nadie"
	resp := doJSON(t, app, http.MethodPut, "/api/v1/customers", dto.UpdateCustomerRequest{
		CustomerID: 42, FirstName: &name,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "update sobre un ID ausente debe ser 404, no 500")
	resp.Body.Close()
}

func TestCustomerUpdate_SinID_400(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	name := "Nadie"
	resp := doJSON(t, app, http.MethodPut, "/api/v1/customers", dto.UpdateCustomerRequest{FirstName: &name})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Delete devuelve el registro eliminado; el GET posterior responde 404.
func TestCustomerDelete_DevuelveRegistroYLuego404(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", dto.CreateCustomerRequest{
		FirstName: "Sofía", Email: "sofia@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted dto.CustomerResponse
	decodeBody(t, resp, &deleted)
	assert.Equal(t, "Sofía", deleted.FirstName)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCustomerDelete_NoExiste_404(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/customers/7", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "delete sobre un ID ausente debe ser 404, no 500")
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y listado
// ──────────────────────────────────────────────────────────────────────────────

// La búsqueda matchea subcadena sobre nombre, apellido o email, sin distinguir
// mayúsculas, y responde 404 cuando no hay resultados.
func TestCustomerSearch(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	seed := []dto.CreateCustomerRequest{
		{FirstName: "Ana", LastName: "García", Email: "ana@example.com"},
		{FirstName: "Luis", LastName: "Martínez", Email: "luis.garcia@example.com"},
		{FirstName: "Sofía", LastName: "López", Email: "sofia@example.com"},
	}
	for _, in := range seed {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", in)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// "gar" matchea el apellido de Ana y el email de Luis
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers/q/GAR", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found []dto.CustomerResponse
	decodeBody(t, resp, &found)
	require.Len(t, found, 2)
	assert.Equal(t, "Ana", found[0].FirstName)
	assert.Equal(t, "Luis", found[1].FirstName)

	// Sin resultados: 404 con mensaje
	resp = doJSON(t, app, http.MethodGet, "/api/v1/customers/q/zzz", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "customer not found!", errBody.Message)
}

// El listado vacío responde 200 con array vacío, nunca null ni 404.
func TestCustomerList_Vacio_200(t *testing.T) {
	app := buildTestApp(defaultRateLimit())

	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.CustomerResponse
	decodeBody(t, resp, &list)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
