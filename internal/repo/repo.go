package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

type Entry struct {
	ID          int       `json:"id"`
	Source      string    `json:"source"`
	FrequencyHz float64   `json:"frequency_hz"`
	WavelengthM float64   `json:"wavelength_m"`
	WorkJ       float64   `json:"work_j"`
	WorkEV      float64   `json:"work_ev"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repository interface {
	Record(ctx context.Context, e Entry) (int, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type PostgresHistoryRepository struct {
	db *sql.DB
}

func NewPostgresHistoryDB(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// InitDB opens and pings the history database. Plain DSNs without an
// sslmode get sslmode=require appended.
func InitDB(ctx context.Context, connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	return db, nil
}

func (r *PostgresHistoryRepository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS calculations (
		id SERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		frequency_hz DOUBLE PRECISION NOT NULL,
		wavelength_m DOUBLE PRECISION NOT NULL,
		work_j DOUBLE PRECISION NOT NULL,
		work_ev DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *PostgresHistoryRepository) Record(ctx context.Context, e Entry) (int, error) {
	var id int
	query := "INSERT INTO calculations (source, frequency_hz, wavelength_m, work_j, work_ev) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, e.Source, e.FrequencyHz, e.WavelengthM, e.WorkJ, e.WorkEV).Scan(&id)
	return id, err
}

func (r *PostgresHistoryRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := "SELECT id, source, frequency_hz, wavelength_m, work_j, work_ev, created_at FROM calculations ORDER BY id DESC LIMIT $1"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.FrequencyHz, &e.WavelengthM, &e.WorkJ, &e.WorkEV, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MemoryHistoryRepository keeps entries in process memory. Used when no
// DATABASE_URL is configured.
type MemoryHistoryRepository struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryHistory() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{now: time.Now}
}

func (m *MemoryHistoryRepository) Record(_ context.Context, e Entry) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = len(m.entries) + 1
	e.CreatedAt = m.now()
	m.entries = append(m.entries, e)
	return e.ID, nil
}

func (m *MemoryHistoryRepository) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Entry, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}
