package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/inoova/shipping-connector/pkg/connector/auth"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	mock_storage "github.com/inoova/shipping-connector/test/mock/connector/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestAPIKeyGenerating(t *testing.T) {
	apiKeyString, err := auth.NewAPIKeyString()
	if err != nil {
		t.Fatal(err)
	}

	hashed1, err := apiKeyString.Hash()
	if err != nil {
		t.Fatal(err)
	}
	hashed2, err := apiKeyString.Hash()
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, hashed1, hashed2)

	assert.NoError(t, auth.VerifyAPIKeyString(apiKeyString, hashed1))
	assert.NoError(t, auth.VerifyAPIKeyString(apiKeyString, hashed2))
	assert.ErrorIs(t, auth.VerifyAPIKeyString(apiKeyString+"a", hashed1), model.ErrMismatchAPIKey)
}

func TestAPIKeyStringID(t *testing.T) {
	id, err := auth.APIKeyString("abc:def").ID()
	assert.NoError(t, err)
	assert.Equal(t, "abc", id)

	for _, ks := range []auth.APIKeyString{"", "abc", "abc:", ":def", "a:b:c"} {
		_, err := ks.ID()
		assert.ErrorIs(t, err, model.ErrInvalidAPIKeyString, "%q", ks)
	}
}

type APIAuthenticatorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	storage       *mock_storage.MockAPIKeyStorage
	tx            *mock_storage.MockTx
	authenticator auth.APIKeyAuthenticator
}

func TestAPIAuthenticator(t *testing.T) {
	suite.Run(t, &APIAuthenticatorTestSuite{})
}

func (s *APIAuthenticatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockAPIKeyStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.authenticator = auth.NewAPIKeyAuthenticator(s.storage)
}

func (s *APIAuthenticatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *APIAuthenticatorTestSuite) TestCreateAPIKey() {
	ts := time.Now().Unix()

	receivedAPIKey := model.APIKey{}
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().StoreAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, key model.APIKey) error {
				receivedAPIKey = key
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	returnedAPIKey, apiKeyString, err := s.authenticator.CreateAPIKey(s.ctx, ts, "erp", "admin")
	s.Require().NoError(err)
	s.Equal(receivedAPIKey, returnedAPIKey)
	s.Equal("erp", receivedAPIKey.Name)
	s.Equal(model.APIKeyStatusActive, receivedAPIKey.Status)
	s.Equal("admin", receivedAPIKey.UpdatedBy)
	s.Equal(ts, receivedAPIKey.CreatedAt)
	id, _ := apiKeyString.ID()
	s.Equal(id, receivedAPIKey.ID)
	s.NoError(auth.VerifyAPIKeyString(apiKeyString, receivedAPIKey.HashString))

	_, _, err = s.authenticator.CreateAPIKey(s.ctx, ts, " ", "admin")
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *APIAuthenticatorTestSuite) TestRevokeAPIKey() {
	ts := time.Now().Unix()
	oldAPIKey := model.APIKey{
		ID:         "id",
		HashString: "hash-string",
		Version:    1,
		Name:       "erp",
		Status:     model.APIKeyStatusActive,
		CreatedAt:  ts - 1000,
		UpdatedAt:  ts - 1000,
		UpdatedBy:  "admin",
	}

	newAPIKey := oldAPIKey
	newAPIKey.Status = model.APIKeyStatusRevoked
	newAPIKey.UpdatedAt = ts
	newAPIKey.UpdatedBy = "security"
	newAPIKey.Version += 1

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq("id")).Return(oldAPIKey, nil),
		s.storage.EXPECT().StoreAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq(newAPIKey)).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	s.Require().NoError(s.authenticator.RevokeAPIKey(s.ctx, ts, "id", "security"))
}

func (s *APIAuthenticatorTestSuite) TestRevokeAPIKeyWithNonExistAPIKey() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq("id")).Return(model.APIKey{}, model.ErrAPIKeyNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	err := s.authenticator.RevokeAPIKey(s.ctx, time.Now().Unix(), "id", "security")
	s.Require().ErrorIs(err, model.ErrAPIKeyNotFound)
}

func (s *APIAuthenticatorTestSuite) TestAuthenticate() {
	ts := time.Now().Unix()
	apiKeyString, err := auth.NewAPIKeyString()
	s.Require().NoError(err)

	apiKeyID, _ := apiKeyString.ID()
	apiKeyHashedString, _ := apiKeyString.Hash()

	oldAPIKey := model.APIKey{
		ID:         apiKeyID,
		HashString: apiKeyHashedString,
		Version:    1,
		Name:       "erp",
		Status:     model.APIKeyStatusActive,
		CreatedAt:  ts - 1000,
		UpdatedAt:  ts - 1000,
		UpdatedBy:  "admin",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq(apiKeyID)).Return(oldAPIKey, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	returnedAPIKey, err := s.authenticator.Authenticate(s.ctx, apiKeyString)
	s.Require().NoError(err)
	s.Equal(model.APIKeyHashedString(""), returnedAPIKey.HashString)
	returnedAPIKey.HashString = oldAPIKey.HashString
	s.Equal(oldAPIKey, returnedAPIKey)

	// Test with revoked API key
	oldAPIKey.Status = model.APIKeyStatusRevoked
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq(apiKeyID)).Return(oldAPIKey, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	returnedAPIKey, err = s.authenticator.Authenticate(s.ctx, apiKeyString)
	s.Require().ErrorIs(err, model.ErrRevokedAPIKey)
	s.Equal(model.APIKey{}, returnedAPIKey)

	// Test with mismatched secret
	oldAPIKey.Status = model.APIKeyStatusActive
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Eq(s.ctx)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetAPIKey(gomock.Eq(s.ctx), gomock.Eq(s.tx), gomock.Eq(apiKeyID)).Return(oldAPIKey, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err = s.authenticator.Authenticate(s.ctx, auth.APIKeyString(apiKeyID+":wrong"))
	s.Require().ErrorIs(err, model.ErrMismatchAPIKey)

	// Test with malformed key
	_, err = s.authenticator.Authenticate(s.ctx, "malformed")
	s.Require().ErrorIs(err, model.ErrInvalidAPIKeyString)
}
