package postgres

import (
	"github.com/inoova/shipping-connector/pkg/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type _Storage struct {
	dbPool *pgxpool.Pool
}

type _TxWrapper struct {
	tx pgx.Tx
}

type _ResultWrapper struct {
	result pgconn.CommandTag
}

type _RowsWrapper struct {
	rows pgx.Rows
}

type _RowWrapper struct {
	row pgx.Row
}

func NewStorageWithPool(dbPool *pgxpool.Pool) *_Storage {
	return &_Storage{dbPool: dbPool}
}

func NewStorageWithConfig(cfg util.PostgresDatabaseConfig) (*_Storage, error) {
	dbPool, err := util.NewPostgresDBPool(cfg)
	if err != nil {
		return nil, err
	}
	return NewStorageWithPool(dbPool), nil
}

func (s *_Storage) Close() {
	s.dbPool.Close()
}
