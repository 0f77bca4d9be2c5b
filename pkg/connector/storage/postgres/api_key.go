package postgres

import (
	"context"
	"errors"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) StoreAPIKey(ctx context.Context, tx storage.Tx, key model.APIKey) error {
	query := `
WITH new_data AS (
	INSERT INTO api_key (id, "version", status, created_at, updated_at, api_key)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		status = excluded.status,
		updated_at = excluded.updated_at,
		api_key = excluded.api_key
	RETURNING id, "version", updated_at, api_key
)
INSERT INTO api_key_history (id, "version", created_at, api_key)
SELECT * FROM new_data`

	_, err := tx.Exec(ctx, query, key.ID, key.Version, key.Status, key.CreatedAt, key.UpdatedAt, key)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetAPIKey(ctx context.Context, tx storage.Tx, id string) (model.APIKey, error) {
	query := `SELECT api_key FROM api_key WHERE id = $1`

	key := model.APIKey{}
	if err := tx.QueryRow(ctx, query, id).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.APIKey{}, model.ErrAPIKeyNotFound
		}
		return model.APIKey{}, err
	}

	return key, nil
}
