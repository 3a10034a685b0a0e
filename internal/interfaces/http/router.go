package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	RateLimit  config.RateLimitConfig
}

// route una fila de la tabla de rutas: método, path, ¿pasa por el limitador?, handlers.
type route struct {
	method   string
	path     string
	limited  bool
	handlers []fiber.Handler
}

// Router registra las rutas de la API bajo /api/v1.
// La tabla se define una sola vez como datos y los bindings se generan en un
// bucle, para que el flag del limitador no pueda divergir entre rutas gemelas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	limited := NewRateLimiter(deps.RateLimit)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	productHandler := NewProductHandler(deps.ProductUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	routes := []route{
		{fiber.MethodPost, "/customers", true, handlers(customerHandler.Create)},
		{fiber.MethodPut, "/customers", true, handlers(customerHandler.Update)},
		{fiber.MethodDelete, "/customers/:id", true, handlers(customerHandler.Delete)},
		{fiber.MethodGet, "/customers/:id", false, handlers(customerHandler.GetByID)},
		{fiber.MethodGet, "/customers/q/:term", true, handlers(customerHandler.Search)},
		{fiber.MethodGet, "/customers", false, handlers(customerHandler.List)},

		{fiber.MethodPost, "/products", false, handlers(productHandler.Create)},
		{fiber.MethodPut, "/products", false, handlers(productHandler.Update)},
		{fiber.MethodDelete, "/products/:id", false, handlers(productHandler.Delete)},
		{fiber.MethodGet, "/products/:id", false, handlers(productHandler.GetByID)},
		{fiber.MethodGet, "/products/q/:term", false, handlers(productHandler.Search)},
		{fiber.MethodGet, "/products", false, handlers(productHandler.List)},

		{fiber.MethodPost, "/users", false, handlers(authHandler.Register)},
		{fiber.MethodPost, "/login", false, handlers(authHandler.Login)},
		{fiber.MethodGet, "/logout", false, handlers(AuthMiddleware(deps.JWTSecret), authHandler.Logout)},
	}

	for _, rt := range routes {
		hs := rt.handlers
		if rt.limited {
			hs = append([]fiber.Handler{limited}, hs...)
		}
		api.Add(rt.method, rt.path, hs...)
	}
}

func handlers(hs ...fiber.Handler) []fiber.Handler {
	return hs
}
