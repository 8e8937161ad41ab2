package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"PriceLens/internal/model"
)

// SQLiteRecorder mirrors every run's observations into a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS observations (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at INTEGER NOT NULL,
			name   TEXT NOT NULL,
			price  TEXT NOT NULL,
			brand  TEXT NOT NULL,
			date   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_run ON observations(run_at)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_name ON observations(name)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts one row per observation inside a single transaction.
func (r *SQLiteRecorder) RecordRun(runAt time.Time, observations []model.PriceObservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO observations (run_at, name, price, brand, date) VALUES (?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	ts := runAt.Unix()
	for _, o := range observations {
		if _, err := stmt.Exec(ts, o.Name, o.Price, o.Brand, o.Date); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert observation: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
