package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// InitDB opens a connection to the PostgreSQL database behind the given DSN
// and ensures the todoitems table exists.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	createTableQuery := `
	CREATE TABLE IF NOT EXISTS todoitems (
		id SERIAL PRIMARY KEY,
		name TEXT,
		is_complete BOOLEAN NOT NULL DEFAULT FALSE,
		secret TEXT
	);`
	if _, err = db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to create 'todoitems' table: %w", err)
	}

	log.Println("Successfully connected to the PostgreSQL database!")
	return db, nil
}
