package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/bank-feed/internal/crypto"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

func TestStoreCredentialHandler(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		Store(gomock.Any(), "user-1", models.KeyTypePartnerAPI, "api-key").
		Return("opaque-secret", nil)

	resp := f.do(t, http.MethodPost, "/api/credentials",
		map[string]any{"keyType": "partner_api", "value": "api-key"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body storeCredentialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "opaque-secret", body.Secret)
}

func TestStoreCredentialHandlerMissingFields(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodPost, "/api/credentials",
		map[string]any{"keyType": "partner_api"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRetrieveCredentialHandler(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		Retrieve(gomock.Any(), "user-1", models.KeyTypePartnerAPI, "opaque-secret").
		Return("api-key", nil)

	resp := f.do(t, http.MethodGet, "/api/credentials/partner_api", nil,
		map[string]string{"X-Credential-Secret": "opaque-secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body retrieveCredentialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "api-key", body.Value)
}

func TestRetrieveCredentialHandlerMissingSecret(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodGet, "/api/credentials/partner_api", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRetrieveCredentialHandlerTamper(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		Retrieve(gomock.Any(), "user-1", models.KeyTypePartnerAPI, "wrong").
		Return("", crypto.ErrTamperedSecret)

	resp := f.do(t, http.MethodGet, "/api/credentials/partner_api", nil,
		map[string]string{"X-Credential-Secret": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"a bad secret maps to unauthorized")
}

func TestRetrieveCredentialHandlerNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		Retrieve(gomock.Any(), "user-1", models.KeyTypePartnerAPI, "secret").
		Return("", store.ErrCredentialNotFound)

	resp := f.do(t, http.MethodGet, "/api/credentials/partner_api", nil,
		map[string]string{"X-Credential-Secret": "secret"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"no stored record is not-found, distinct from tamper")
}
