// Package auth issues and checks the API keys callers of the connector authenticate with.
package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyString is the string representation of an API key.
// The format of APIKeyString is [ID]:[SECRET].
type APIKeyString string

func (ks APIKeyString) ID() (string, error) {
	parts := strings.Split(string(ks), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", model.ErrInvalidAPIKeyString
	}

	return parts[0], nil
}

func (ks APIKeyString) Hash() (model.APIKeyHashedString, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(string(ks)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return model.APIKeyHashedString(hashed), nil
}

func NewAPIKeyString() (APIKeyString, error) {
	prefixBytes := make([]byte, 16)
	secretBytes := make([]byte, 32)

	if _, err := rand.Read(prefixBytes); err != nil {
		return "", err
	}
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}

	base64Prefix := base64.RawURLEncoding.EncodeToString(prefixBytes)
	base64Secret := base64.RawURLEncoding.EncodeToString(secretBytes)
	return APIKeyString(fmt.Sprintf("%s:%s", base64Prefix, base64Secret)), nil
}

func VerifyAPIKeyString(ks APIKeyString, hashedKs model.APIKeyHashedString) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKs), []byte(ks))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.ErrMismatchAPIKey
	}

	return err
}

type APIKeyAuthenticator interface {
	CreateAPIKey(ctx context.Context, ts int64, name string, createdBy string) (model.APIKey, APIKeyString, error)
	RevokeAPIKey(ctx context.Context, ts int64, id string, revokedBy string) error
	Authenticate(ctx context.Context, key APIKeyString) (model.APIKey, error)
}

type _APIKeyAuthenticator struct {
	storage storage.APIKeyStorage
}

func NewAPIKeyAuthenticator(storage storage.APIKeyStorage) APIKeyAuthenticator {
	return &_APIKeyAuthenticator{
		storage: storage,
	}
}

func (a *_APIKeyAuthenticator) CreateAPIKey(ctx context.Context, ts int64, name string, createdBy string) (model.APIKey, APIKeyString, error) {
	if strings.TrimSpace(name) == "" {
		return model.APIKey{}, "", fmt.Errorf("name: cannot be blank%w", model.ErrInvalidParameter)
	}

	apiKeyString, err := NewAPIKeyString()
	if err != nil {
		return model.APIKey{}, "", err
	}
	id, err := apiKeyString.ID()
	if err != nil {
		return model.APIKey{}, "", err
	}
	hashString, err := apiKeyString.Hash()
	if err != nil {
		return model.APIKey{}, "", err
	}

	apiKey := model.APIKey{
		ID:         id,
		HashString: hashString,
		Version:    1,
		Name:       name,
		Status:     model.APIKeyStatusActive,
		CreatedAt:  ts,
		UpdatedAt:  ts,
		UpdatedBy:  createdBy,
	}

	tx, ctx, err := a.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.APIKey{}, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := a.storage.StoreAPIKey(ctx, tx, apiKey); err != nil {
		return model.APIKey{}, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.APIKey{}, "", err
	}

	return apiKey, apiKeyString, nil
}

func (a *_APIKeyAuthenticator) RevokeAPIKey(ctx context.Context, ts int64, id string, revokedBy string) error {
	tx, ctx, err := a.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	apiKey, err := a.storage.GetAPIKey(ctx, tx, id)
	if err != nil {
		return err
	}
	if apiKey.Status == model.APIKeyStatusRevoked {
		return nil
	}

	apiKey.Version += 1
	apiKey.Status = model.APIKeyStatusRevoked
	apiKey.UpdatedAt = ts
	apiKey.UpdatedBy = revokedBy
	if err := a.storage.StoreAPIKey(ctx, tx, apiKey); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Authenticate returns the active API key matching key, without its hash.
func (a *_APIKeyAuthenticator) Authenticate(ctx context.Context, key APIKeyString) (model.APIKey, error) {
	id, err := key.ID()
	if err != nil {
		return model.APIKey{}, err
	}

	tx, ctx, err := a.storage.CreateTx(ctx)
	if err != nil {
		return model.APIKey{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	apiKey, err := a.storage.GetAPIKey(ctx, tx, id)
	if err != nil {
		return model.APIKey{}, err
	}
	if apiKey.Status != model.APIKeyStatusActive {
		return model.APIKey{}, model.ErrRevokedAPIKey
	}
	if err := VerifyAPIKeyString(key, apiKey.HashString); err != nil {
		return model.APIKey{}, err
	}

	apiKey.HashString = ""
	return apiKey, nil
}
