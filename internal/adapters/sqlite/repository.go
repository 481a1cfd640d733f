package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"candleChart/internal/domain"
	"candleChart/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements the ports.SeriesRepository interface using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/candle_chart.db" // Default path
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000") // WAL mode for better concurrency
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite handles concurrency internally; the Go driver benefits from a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cfg.Logger.Info(context.Background(), "SQLite database connection established", map[string]interface{}{"path": dbPath})

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "Database schema initialized/verified")

	return repo, nil
}

// initializeSchema creates tables if they don't exist.
// NOTE: This is a basic approach. A proper migration tool is recommended for production.
func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS candles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		interval TEXT NOT NULL,
		open_time INTEGER NOT NULL, -- unix milliseconds
		close_time INTEGER NOT NULL,
		open REAL NOT NULL,
		high REAL NOT NULL,
		low REAL NOT NULL,
		close REAL NOT NULL,
		volume REAL NOT NULL,
		UNIQUE (symbol, interval, open_time)
	);
	CREATE INDEX IF NOT EXISTS idx_candles_symbol_interval_time ON candles (symbol, interval, open_time);
	`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// SaveCandles persists a batch of candles inside one transaction. Candles
// that already exist (same symbol, interval and open time) are skipped.
// Returns the number of rows actually inserted.
func (r *Repository) SaveCandles(ctx context.Context, candles []*domain.Candle) (int, error) {
	if len(candles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
	INSERT OR IGNORE INTO candles (symbol, interval, open_time, close_time, open, high, low, close, volume)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare candle insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range candles {
		result, err := stmt.ExecContext(ctx,
			c.Symbol, c.Interval, c.OpenTime.UnixMilli(), c.CloseTime.UnixMilli(),
			c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			return 0, fmt.Errorf("failed to insert candle for symbol %s at %s: %w", c.Symbol, c.OpenTime, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected for candle insert: %w", err)
		}
		inserted += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit candle batch: %w", err)
	}
	r.logger.Debug(ctx, "Candles saved", map[string]interface{}{"count": len(candles), "inserted": inserted})
	return inserted, nil
}

// FindRecent retrieves the most recent candles for a symbol and interval, up
// to a limit, returned in chronological order.
func (r *Repository) FindRecent(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
	const query = `
	SELECT open_time, close_time, open, high, low, close, volume
	FROM candles
	WHERE symbol = ? AND interval = ?
	ORDER BY open_time DESC
	LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, symbol, interval, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candles for symbol %s: %w: %v", symbol, ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	var series domain.Series
	for rows.Next() {
		var openMs, closeMs int64
		c := &domain.Candle{Symbol: symbol, Interval: interval, IsFinal: true}
		if err := rows.Scan(&openMs, &closeMs, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan candle row: %w", err)
		}
		c.OpenTime = time.UnixMilli(openMs)
		c.CloseTime = time.UnixMilli(closeMs)
		series = append(series, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candle rows: %w", err)
	}

	// Newest-first from the query; the chart needs chronological order.
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	return series, nil
}

// CountBySymbol counts the stored candles for a symbol and interval.
func (r *Repository) CountBySymbol(ctx context.Context, symbol, interval string) (int, error) {
	const query = `SELECT COUNT(*) FROM candles WHERE symbol = ? AND interval = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, symbol, interval).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candles for symbol %s: %w: %v", symbol, ports.ErrQueryFailed, err)
	}
	return count, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	r.logger.Info(context.Background(), "Closing database connection")
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
