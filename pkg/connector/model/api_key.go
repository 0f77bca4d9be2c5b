package model

type APIKeyStatus string

const (
	APIKeyStatusActive  = APIKeyStatus("active")
	APIKeyStatusRevoked = APIKeyStatus("revoked")
)

// APIKeyHashedString is the bcrypt hash of an API key string. The plain key cannot be recovered from it.
type APIKeyHashedString string

type APIKey struct {
	ID         string             `json:"id"`
	HashString APIKeyHashedString `json:"hash_string"`
	Version    int                `json:"version"`
	Name       string             `json:"name"`
	Status     APIKeyStatus       `json:"status"`

	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}
