package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/stubstore"
)

// Runs the in-memory backend with demo data so the console can be
// exercised locally without the real auth and store services.
func main() {
	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8084"
	}

	store := stubstore.NewStore()
	store.SeedAccount("demo", "DemoPass123", "Demo Customer")
	store.SeedProduct(domain.Product{
		ID: 1, SKU: "SKU-001", Name: "Wireless Mouse",
		Description: "Two-button wireless mouse", UnitPrice: 29.99, Active: true,
	}, 25)
	store.SeedProduct(domain.Product{
		ID: 2, SKU: "SKU-002", Name: "Mechanical Keyboard",
		Description: "Tenkeyless mechanical keyboard", UnitPrice: 89.99, Active: true,
	}, 10)
	store.SeedProduct(domain.Product{
		ID: 3, SKU: "SKU-003", Name: "USB-C Hub",
		Description: "Seven-port USB-C hub", UnitPrice: 44.50, Active: true,
	}, 40)

	server := stubstore.NewServer(store)

	log.Printf("stub store backend starting on :%s", port)
	if err := http.ListenAndServe(":"+port, server.Router()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
