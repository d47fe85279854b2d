package api

import (
	"context"
	"github.com/bytedance/sonic"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/ougirez/autocatalog/internal/pkg/utils"
	"github.com/ougirez/autocatalog/internal/service/catalog"
	"github.com/ougirez/autocatalog/internal/service/modification"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const (
	testSecret     = "admin-secret"
	testSigningKey = "signing-key"
)

type memoryStore struct {
	saved []*domain.Modification
	saves int
}

func (m *memoryStore) ListModifications(context.Context) ([]*domain.Modification, error) {
	return m.saved, nil
}

func (m *memoryStore) GetModification(_ context.Context, id int64) (*domain.Modification, error) {
	for _, item := range m.saved {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (m *memoryStore) SaveMappingResult(_ context.Context, res *domain.MappingResult) error {
	m.saves++
	m.saved = res.Modifications
	return nil
}

func newTestAPI(t *testing.T) (*APIService, *memoryStore) {
	t.Helper()

	viper.Set(constants.ViperSecretKey, testSecret)
	viper.Set(constants.ViperSigningKey, testSigningKey)
	t.Cleanup(func() {
		viper.Set(constants.ViperSecretKey, "")
		viper.Set(constants.ViperSigningKey, "")
	})

	st := &memoryStore{saved: []*domain.Modification{{
		ID: 1, AvitoModificationID: 500, Name: "2.0 AT", VehicleEngineCapacity: "2.0", Code: "at__150__2_0",
	}}}
	tables := domain.TaxonomyTables{
		Bodies:        domain.TaxonomyTable{{Name: "седан", Code: "sedan"}},
		Transmissions: domain.TaxonomyTable{{Name: "механика", Code: "mt"}},
		Drives:        domain.TaxonomyTable{{Name: "передний", Code: "fwd"}},
	}

	svc, err := NewAPIService(catalog.NewCatalogService(st, modification.NewMapper(tables)))
	require.NoError(t, err)
	return svc, st
}

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: secret})
	require.NoError(t, err)
	return token
}

func catalogBody(transmission string) string {
	return `{"records": [{
		"Modification": [{"id": ["101"], "_": "1.6 MT"}],
		"Model": [{"id": ["10"], "_": "Solaris"}],
		"Transmission": [{"id": ["20"], "_": "` + transmission + `"}],
		"BodyType": [{"id": ["30"], "_": "Седан"}],
		"DriveType": [{"id": ["40"], "_": "Передний"}],
		"YearFrom": [{"_": "2010"}],
		"EngineSize": [{"_": "1.6"}],
		"Power": [{"_": "123"}]
	}]}`
}

func do(svc *APIService, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: token})
	}
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSyncModifications(t *testing.T) {
	svc, st := newTestAPI(t)

	rec := do(svc, http.MethodPost, "/api/v1/catalog/modifications/sync", catalogBody("Механика"), adminToken(t, testSecret))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary domain.SyncSummary
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &summary))
	assert.False(t, summary.DryRun)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 1, summary.CatalogRecords)
	assert.Equal(t, 1, summary.SavedRecords)
	assert.Equal(t, 2, summary.Modifications)
	assert.Equal(t, 1, st.saves)
	assert.Equal(t, "mt__123__1_6", st.saved[0].Code)
}

func TestPreviewModifications(t *testing.T) {
	svc, st := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/modifications/preview", strings.NewReader(catalogBody("механика")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, testSecret))
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Summary domain.SyncSummary   `json:"summary"`
		Result  domain.MappingResult `json:"result"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Summary.DryRun)
	require.Len(t, resp.Result.Modifications, 2)
	assert.Equal(t, int64(1), resp.Result.Modifications[0].ID)
	assert.Equal(t, int64(2), resp.Result.Modifications[1].ID)
	assert.Equal(t, int64(500), resp.Result.Modifications[1].AvitoModificationID)
	require.Len(t, resp.Result.Transmissions, 1)
	assert.Equal(t, "mt", resp.Result.Transmissions[0].Code)
	assert.Zero(t, st.saves)
}

func TestSyncModificationsErrors(t *testing.T) {
	svc, _ := newTestAPI(t)
	valid := adminToken(t, testSecret)

	tests := []struct {
		name  string
		body  string
		token string
		code  int
	}{
		{"no token", catalogBody("механика"), "", http.StatusUnauthorized},
		{"wrong secret", catalogBody("механика"), adminToken(t, "guess"), http.StatusUnauthorized},
		{"bad token", catalogBody("механика"), "garbage", http.StatusUnauthorized},
		{"invalid json", `{"records": [`, valid, http.StatusBadRequest},
		{"no records", `{"records": []}`, valid, http.StatusBadRequest},
		{"unknown transmission", catalogBody("Робот"), valid, http.StatusUnprocessableEntity},
		{"malformed record", `{"records": [{"Modification": []}]}`, valid, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(svc, http.MethodPost, "/api/v1/catalog/modifications/sync", tt.body, tt.token)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestListModifications(t *testing.T) {
	svc, _ := newTestAPI(t)

	rec := do(svc, http.MethodGet, "/api/v1/catalog/modifications", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []*domain.Modification
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "at__150__2_0", items[0].Code)
}

func TestGetModification(t *testing.T) {
	svc, _ := newTestAPI(t)

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"found", "/api/v1/catalog/modifications/1", http.StatusOK},
		{"not found", "/api/v1/catalog/modifications/42", http.StatusNotFound},
		{"bad id", "/api/v1/catalog/modifications/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(svc, http.MethodGet, tt.target, "", "")
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}
