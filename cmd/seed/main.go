// seed puebla la base de datos con clientes y productos de ejemplo para desarrollo.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, DB_PORT, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Todo el seed en una sola transacción: o entra completo o no entra nada.
	tx, err := pool.Begin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "begin: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerRepo := postgres.NewCustomerRepository(tx)
	productRepo := postgres.NewProductRepository(tx)
	now := time.Now()

	customers := []*entity.Customer{
		{FirstName: "Ana", LastName: "García", Address: "Calle 10 #4-21, Bogotá", Email: "ana.garcia@example.com", PhoneNumber: "3001234567", CreatedAt: now, UpdatedAt: now},
		{FirstName: "Luis", LastName: "Martínez", Address: "Cra 45 #12-30, Medellín", Email: "luis.martinez@example.com", PhoneNumber: "3017654321", CreatedAt: now, UpdatedAt: now},
		{FirstName: "Sofía", LastName: "López", Address: "Av 6N #23-50, Cali", Email: "sofia.lopez@example.com", PhoneNumber: "3029876543", CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range customers {
		if err := customerRepo.Create(ctx, c); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Fprintln(os.Stderr, "la base ya tiene datos de seed (email duplicado); nada que hacer")
				os.Exit(0)
			}
			fmt.Fprintf(os.Stderr, "insertar cliente %s: %v\n", c.Email, err)
			os.Exit(1)
		}
		fmt.Printf("cliente %d: %s %s\n", c.ID, c.FirstName, c.LastName)
	}

	products := []*entity.Product{
		{ID: 1, Name: "Pen", Description: "Blue pen", Price: decimal.NewFromFloat(1.5), Category: "Office", ImageURL: "http://x/1.png", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Notebook", Description: "A5 ruled notebook", Price: decimal.NewFromFloat(3.9), Category: "Office", ImageURL: "http://x/2.png", CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Mug", Description: "Ceramic mug 350ml", Price: decimal.NewFromFloat(7.25), Category: "Kitchen", ImageURL: "http://x/3.png", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Fprintln(os.Stderr, "la base ya tiene datos de seed (product_id duplicado); nada que hacer")
				os.Exit(0)
			}
			fmt.Fprintf(os.Stderr, "insertar producto %d: %v\n", p.ID, err)
			os.Exit(1)
		}
		fmt.Printf("producto %d: %s\n", p.ID, p.Name)
	}

	if err := tx.Commit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "commit: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("seed completado")
}
