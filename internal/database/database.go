package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"barbershop-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service wraps the database handle with health reporting.
type Service interface {
	Health() map[string]string
	DB() *sql.DB
	Close() error
}

type service struct {
	db *sql.DB
}

// New opens a PostgreSQL connection pool using the pgx stdlib driver.
func New(cfg config.DatabaseConfig) Service {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.Schema)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &service{db: db}
}

// Health pings the database and reports pool statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)

	return stats
}

// DB exposes the underlying handle.
func (s *service) DB() *sql.DB {
	return s.db
}

// Close closes the connection pool.
func (s *service) Close() error {
	return s.db.Close()
}
