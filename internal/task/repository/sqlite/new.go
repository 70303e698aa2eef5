package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"smart-todo-backend/internal/task/repository"
	pkgLog "smart-todo-backend/pkg/log"
)

// InitDB opens the SQLite database at path and ensures the schema exists.
// Use ":memory:" for an ephemeral database.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed INTEGER NOT NULL DEFAULT 0,
		due_date TEXT,
		priority TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

// New creates a new SQLite-backed task repository.
func New(l pkgLog.Logger, db *sql.DB) repository.TaskRepository {
	return &implRepository{l: l, db: db}
}
