package postgres

//nolint:revive
import (
	"cyclebook/config"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 20
	postgresConnMaxLifetime   = 30 * time.Minute
)

var ErrConnectionExhausted = errors.New("postgres: retries exhausted")

// Connection splits reads from writes. Read falls back to Write when no replica is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func New(cfg *config.Config) (*Connection, error) {
	pg := cfg.DB.Postgres

	write, err := connect("write", dsn(cfg, endpoint(pg.Write)), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	if pg.Read.Host == "" {
		return &Connection{Read: write, Write: write}, nil
	}

	read, err := connect("read", dsn(cfg, endpoint(pg.Read)), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	return nil
}

// DSN builds the write side connection string, also used by migrations.
func DSN(cfg *config.Config) string {
	return dsn(cfg, endpoint(cfg.DB.Postgres.Write))
}

func dsn(cfg *config.Config, ep endpoint) string {
	name := ep.Name
	if cfg.DB.Postgres.Prefix != "" {
		name = cfg.DB.Postgres.Prefix + name
	}

	sslMode := ep.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	port := ep.Port
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}

func connect(name, descriptor string, maxRetry, waitTime int) (*sqlx.DB, error) {
	if maxRetry < 1 {
		maxRetry = 1
	}

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB, nil
		}

		lastErr = err

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionExhausted, name, lastErr)
}
