package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: make(map[int64]entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Search emula ILIKE: subcadena sin distinguir mayúsculas sobre nombre, apellido y email.
func (r *fakeCustomerRepo) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := strings.ToLower(term)
	var out []*entity.Customer
	for _, c := range r.items {
		if strings.Contains(strings.ToLower(c.FirstName), t) ||
			strings.Contains(strings.ToLower(c.LastName), t) ||
			strings.Contains(strings.ToLower(c.Email), t) {
			cc := c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, it := range r.items {
		if id != c.ID && it.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	delete(r.items, id)
	return &c, nil
}

type fakeProductRepo struct {
	mu    sync.Mutex
	items map[int64]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[int64]entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Search emula ILIKE sobre name únicamente (la descripción queda fuera a propósito).
func (r *fakeProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := strings.ToLower(term)
	var out []*entity.Product
	for _, p := range r.items {
		if strings.Contains(strings.ToLower(p.Name), t) {
			pp := p
			out = append(out, &pp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	delete(r.items, id)
	return &p, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.items[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la app completa (router real) sobre los fakes.
// Con rl generoso los tests CRUD no rozan el limitador; los tests de rate
// limiting pasan su propia configuración.
func buildTestApp(rl config.RateLimitConfig) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(newFakeCustomerRepo(), time.Second),
		ProductUC:  usecase.NewProductUseCase(newFakeProductRepo(), time.Second),
		AuthUC: auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: 60,
			Issuer:     "tienda-api-test",
		}, time.Second),
		JWTSecret: testJWTSecret,
		RateLimit: rl,
	})
	return app
}

func defaultRateLimit() config.RateLimitConfig {
	return config.RateLimitConfig{Max: 1000, Window: time.Minute}
}

// doJSON lanza una petición con cuerpo JSON (o sin cuerpo si body es nil).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
