package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/abefas/todoitems/config"
	"github.com/abefas/todoitems/database"
	"github.com/abefas/todoitems/handlers"
	"github.com/abefas/todoitems/middleware"
	"github.com/abefas/todoitems/store"

	"github.com/gorilla/mux"
)

func main() {
	configPath := flag.String("config", "todoitems.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the store explicitly and thread it through the handlers; no
	// ambient globals.
	var s store.Store
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.InitDB(cfg.Store.DSN)
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}
		defer db.Close()
		s = store.NewPostgresStore(db)
	default:
		s = store.NewMemoryStore()
	}

	// Create a new router and a handlers instance with the store handle.
	router := mux.NewRouter()
	h := handlers.NewHandlers(s)
	h.Register(router)

	// Start the server.
	log.Printf("Server listening on %s (store: %s)...", cfg.Addr, cfg.Store.Driver)
	log.Fatal(http.ListenAndServe(cfg.Addr, middleware.RequestID(router)))
}
