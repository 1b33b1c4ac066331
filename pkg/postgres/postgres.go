package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type Config struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	Name           string        `envconfig:"DB_NAME" default:"biblioteca_universitaria"`
	User           string        `envconfig:"DB_USER" default:"postgres"`
	Password       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns   int           `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxIdleConns   int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	IdleTimeout    time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"30s"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"2s"`
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.User, c.Password, net.JoinHostPort(c.Host, c.Port), c.Name, c.SSLMode)
}

// NewPostgresDB opens a bounded connection pool and applies the embedded
// goose migrations. Requests past MaxOpenConns wait until their context
// deadline, then fail.
func NewPostgresDB(ctx context.Context, cfg *Config, migrations fs.FS) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.IdleTimeout)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return nil, errors.Wrap(err, "goose up")
	}

	return db, nil
}
