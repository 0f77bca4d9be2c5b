package util

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPoolSize = 10

type PostgresDatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool"`
}

// ConnString renders the config as a pgx connection URL.
func (c PostgresDatabaseConfig) ConnString() string {
	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		url.PathEscape(c.User),
		url.PathEscape(c.Password),
		url.PathEscape(c.Host),
		c.Port,
		url.PathEscape(c.Database),
		url.QueryEscape(sslMode),
		poolSize,
	)
}

func NewPostgresDBPool(config PostgresDatabaseConfig) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open connection to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return dbPool, nil
}
