package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/inoova/shipping-connector/pkg/util"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	dbHost := os.Getenv("DATABASE_HOST")
	if dbHost == "" {
		s.T().Skip("DATABASE_HOST is not set")
	}
	dbPort, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		dbPort = 5432
	}

	config := util.PostgresDatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		Database: os.Getenv("DATABASE_NAME"),
		User:     os.Getenv("DATABASE_USER"),
		Password: os.Getenv("DATABASE_PASSWORD"),
		SSLMode:  "disable",
		PoolSize: 5,
	}

	pool, err := util.NewPostgresDBPool(config)
	s.Require().NoError(err)
	s.pgPool = pool

	tableNames := []string{
		"delivery_note",
		"delivery_note_history",
		"webhook",
		"webhook_history",
		"webhook_outbox",
		"api_key",
		"api_key_history",
	}
	for _, tableName := range tableNames {
		_, err := pool.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %q`, tableName))
		s.Require().NoError(err)
	}
}

func (s *BaseTestSuite) TearDownTest() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}

func (s *BaseTestSuite) loadFixtures(dir string) {
	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory(dir),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}
