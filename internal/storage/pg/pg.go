package pg

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/notalone-dev/notalone/internal/config"
)

type Storage struct {
	db  *sql.DB
	cfg *config.Config

	schemaMu    sync.Mutex
	schemaReady bool
}

func New(cfg *config.Config) (*Storage, error) {
	connStr := cfg.DatabaseURL()
	if connStr == "" {
		return nil, fmt.Errorf("database connection string not found: set POSTGRES_URL1, POSTGRES_URL or DATABASE_URL")
	}

	slog.Info("connecting to db")
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	pool := cfg.Public.Pool
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxOpenConns)
	db.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleSeconds) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(pool.ConnectTimeoutSeconds)*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("successfully connected to db")

	return &Storage{db: db, cfg: cfg}, nil
}

// withConn checks out one pooled connection, runs op with it and releases it
// on every exit path, propagating op's error unchanged.
func (s *Storage) withConn(ctx context.Context, op func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return op(conn)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
