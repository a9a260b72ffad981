package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"blogfeed/internal/config"
)

type DB struct {
	*sqlx.DB
	log *zap.Logger
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS posts (
	id            BIGSERIAL PRIMARY KEY,
	content       TEXT NOT NULL,
	"user"        TEXT NOT NULL,
	avatar_url    TEXT,
	thumbnail_url TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
)`

// created_at keeps millisecond precision so feed order is meaningful within a second.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS posts (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	content       TEXT NOT NULL,
	"user"        TEXT NOT NULL,
	avatar_url    TEXT,
	thumbnail_url TEXT,
	created_at    TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
)`

func ConnectDB(cfg config.DB, log *zap.Logger) (*DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		connStr := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DbHOST,
			cfg.DbPORT,
			cfg.DbUSER,
			cfg.DbPASSWORD,
			cfg.DbNAME,
			cfg.DbSSLMODE,
		)

		log.Info("connecting to postgres", zap.String("host", cfg.DbHOST), zap.String("dbname", cfg.DbNAME))

		db, err = sqlx.Connect("postgres", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	case config.DriverSQLite:
		log.Info("opening sqlite database", zap.String("path", cfg.Path))

		db, err = sqlx.Connect("sqlite3", cfg.Path+"?_busy_timeout=5000&_foreign_keys=on")
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		// one connection: sqlite has a single writer anyway
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	dbStruct := &DB{DB: db, log: log}

	if err := dbStruct.InitSchema(); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info("database ready", zap.String("driver", cfg.Driver))
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// InitSchema creates the posts table if it does not exist yet.
func (db *DB) InitSchema() error {
	schema := sqliteSchema
	if db.DriverName() == config.DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	db.log.Debug("schema initialized")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.Ping()
}
