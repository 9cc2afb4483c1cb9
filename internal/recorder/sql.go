package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"StockDesk/internal/model"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLRecorder writes analysis history to SQLite or PostgreSQL.
type SQLRecorder struct {
	db     *sql.DB
	driver string
	mu     sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLRecorder, error) {
	db, err := sql.Open(DriverSQLite, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	r, err := newSQLRecorder(db, DriverSQLite)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

// NewPostgresRecorder connects to PostgreSQL with dsn and runs migrations.
func NewPostgresRecorder(dsn string) (*SQLRecorder, error) {
	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	r, err := newSQLRecorder(db, DriverPostgres)
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] postgres recorder connected")
	return r, nil
}

func newSQLRecorder(db *sql.DB, driver string) (*SQLRecorder, error) {
	r := &SQLRecorder{db: db, driver: driver}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// Row ids are UUIDs so the same schema works for both drivers.
func (r *SQLRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			id             TEXT PRIMARY KEY,
			timestamp      BIGINT NOT NULL,
			source         TEXT,
			symbol         TEXT NOT NULL,
			days           INTEGER,
			from_date      TEXT,
			to_date        TEXT,
			current_price  DOUBLE PRECISION,
			price_change   DOUBLE PRECISION,
			percent_change DOUBLE PRECISION,
			high           DOUBLE PRECISION,
			low            DOUBLE PRECISION,
			avg_volume     DOUBLE PRECISION
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_symbol ON summaries(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS signal_runs (
			id           TEXT PRIMARY KEY,
			timestamp    BIGINT NOT NULL,
			source       TEXT,
			symbol       TEXT NOT NULL,
			short_period INTEGER,
			long_period  INTEGER,
			points       INTEGER,
			trend        TEXT,
			short_ma     DOUBLE PRECISION,
			long_ma      DOUBLE PRECISION,
			signal_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signal_runs_symbol ON signal_runs(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id       TEXT PRIMARY KEY,
			run_id   TEXT NOT NULL,
			kind     TEXT,
			date     TEXT,
			price    DOUBLE PRECISION,
			short_ma DOUBLE PRECISION,
			long_ma  DOUBLE PRECISION,
			position INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_run ON signals(run_id)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id         TEXT PRIMARY KEY,
			timestamp  BIGINT NOT NULL,
			source     TEXT,
			symbol     TEXT NOT NULL,
			buy_date   TEXT,
			buy_price  DOUBLE PRECISION,
			sell_date  TEXT,
			sell_price DOUBLE PRECISION,
			profit     DOUBLE PRECISION,
			roi        DOUBLE PRECISION,
			outcome    TEXT,
			zero_basis BOOLEAN,
			reversed   BOOLEAN
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// rebind turns ? placeholders into $n for PostgreSQL.
func (r *SQLRecorder) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *SQLRecorder) RecordSummary(src Source, s *model.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var price any
	if s.CurrentPrice.Valid {
		price = s.CurrentPrice.Float64
	}
	_, err := r.db.Exec(r.rebind(`INSERT INTO summaries
		(id, timestamp, source, symbol, days, from_date, to_date,
		 current_price, price_change, percent_change, high, low, avg_volume)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`),
		uuid.NewString(), time.Now().Unix(), string(src), s.Symbol, s.Days, s.From, s.To,
		price, s.PriceChange, s.PercentChange, s.High, s.Low, s.AverageVolume,
	)
	return err
}

// RecordSignals stores one run row plus a row per crossover, atomically.
func (r *SQLRecorder) RecordSignals(src Source, rep *model.SignalReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	if _, err := tx.Exec(r.rebind(`INSERT INTO signal_runs
		(id, timestamp, source, symbol, short_period, long_period, points,
		 trend, short_ma, long_ma, signal_count)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`),
		runID, time.Now().Unix(), string(src), rep.Symbol, rep.ShortPeriod, rep.LongPeriod,
		rep.Points, rep.Trend.Kind.String(), rep.Trend.Short, rep.Trend.Long, len(rep.Signals),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, s := range rep.Signals {
		if _, err := tx.Exec(r.rebind(`INSERT INTO signals
			(id, run_id, kind, date, price, short_ma, long_ma, position)
			VALUES (?,?,?,?,?,?,?,?)`),
			uuid.NewString(), runID, s.Kind.String(), s.Date, s.Price, s.Short, s.Long, s.Position,
		); err != nil {
			return fmt.Errorf("insert signal: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLRecorder) RecordTrade(src Source, p *model.Performance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(r.rebind(`INSERT INTO trades
		(id, timestamp, source, symbol, buy_date, buy_price, sell_date, sell_price,
		 profit, roi, outcome, zero_basis, reversed)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`),
		uuid.NewString(), time.Now().Unix(), string(src), p.Symbol, p.BuyDate, p.BuyPrice,
		p.SellDate, p.SellPrice, p.Profit, p.ROI, string(p.Outcome), p.ZeroBasis, p.Reversed,
	)
	return err
}

func (r *SQLRecorder) Close() error {
	log.Printf("[INFO] closing %s recorder", r.driver)
	return r.db.Close()
}
