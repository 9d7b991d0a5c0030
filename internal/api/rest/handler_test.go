package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assethub-tools/nft-migrator/internal/api/middleware"
	"github.com/assethub-tools/nft-migrator/internal/api/rest"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/migration"
	"github.com/assethub-tools/nft-migrator/internal/mocks"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
	"github.com/assethub-tools/nft-migrator/internal/reconciler"
	"github.com/assethub-tools/nft-migrator/internal/store/schema"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	reader       *mocks.MockCollectionReader
	mapper       *mocks.MockMapper
	reconciler   *mocks.MockReconciler
	orchestrator *mocks.MockOrchestrator
	store        *mocks.MockStore
	router       *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		reader:       mocks.NewMockCollectionReader(ctrl),
		mapper:       mocks.NewMockMapper(ctrl),
		reconciler:   mocks.NewMockReconciler(ctrl),
		orchestrator: mocks.NewMockOrchestrator(ctrl),
		store:        mocks.NewMockStore(ctrl),
	}

	f.router = gin.New()
	handler := rest.NewHandler(f.reader, f.mapper, f.reconciler, f.orchestrator, f.store)
	rest.SetupRoutes(f.router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return f
}

func (f *fixture) request(method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)

	recorder := f.request(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestListCollections(t *testing.T) {
	f := newFixture(t)

	f.reader.EXPECT().OwnedCollections(gomock.Any(), domain.PalletUniques, "5Owner").
		Return([]domain.CollectionRecord{{ID: "9", Owner: "5Owner"}}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/collections/uniques?owner=5Owner", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Collections []domain.CollectionRecord `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Collections, 1)
	assert.Equal(t, domain.CollectionID("9"), body.Collections[0].ID)
}

func TestListCollections_Validation(t *testing.T) {
	f := newFixture(t)

	// Unknown pallet
	recorder := f.request(http.MethodGet, "/api/v1/collections/assets?owner=5Owner", nil, false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Missing owner
	recorder = f.request(http.MethodGet, "/api/v1/collections/uniques", nil, false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCollection_NotFound(t *testing.T) {
	f := newFixture(t)

	f.reader.EXPECT().Collection(gomock.Any(), domain.PalletNfts, domain.CollectionID("404")).
		Return(nil, domain.ErrCollectionNotFound)

	recorder := f.request(http.MethodGet, "/api/v1/collections/nfts/404", nil, false)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetCollectionRoles(t *testing.T) {
	f := newFixture(t)

	admin := "5Alice"
	f.reader.EXPECT().Roles(gomock.Any(), domain.PalletNfts, domain.CollectionID("21")).
		Return(&domain.CollectionRoles{Admin: &admin}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/collections/nfts/21/roles", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"admin":"5Alice"}`, recorder.Body.String())
}

func TestGetMappings(t *testing.T) {
	f := newFixture(t)

	f.mapper.EXPECT().LoadMappedCollections(gomock.Any()).
		Return([]domain.MappedCollection{
			{
				SourceCollection: "9",
				TargetCollection: "21",
				Owner:            "5Owner",
				MetadataLink:     "ipfs://alpha",
			},
			{
				SourceCollection: "3",
				TargetCollection: "40",
				Owner:            "5Other",
				MetadataLink:     "ipfs://beta",
			},
		})

	recorder := f.request(http.MethodGet, "/api/v1/migrations/mappings", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Mappings []domain.MappedCollection `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Mappings, 2)
	assert.Equal(t, domain.CollectionID("21"), body.Mappings[0].TargetCollection)
}

func TestGetMappings_OwnerFilter(t *testing.T) {
	f := newFixture(t)

	f.mapper.EXPECT().LoadMappedCollections(gomock.Any()).
		Return([]domain.MappedCollection{
			{SourceCollection: "9", TargetCollection: "21", Owner: "5Owner", MetadataLink: "ipfs://alpha"},
			{SourceCollection: "3", TargetCollection: "40", Owner: "5Other", MetadataLink: "ipfs://beta"},
		})

	recorder := f.request(http.MethodGet, "/api/v1/migrations/mappings?owner=5Owner", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Mappings []domain.MappedCollection `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Mappings, 1)
	assert.Equal(t, "5Owner", body.Mappings[0].Owner)
}

func TestReconcile(t *testing.T) {
	f := newFixture(t)

	f.reconciler.EXPECT().Reconcile(gomock.Any(), reconciler.Params{
		SourceCollection: "7",
		TargetCollection: "12",
		Account:          "5Claimer",
	}).Return(&reconciler.Result{Items: []domain.ClaimableItem{}}, nil)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/reconcile", map[string]string{
		"sourceCollection": "7",
		"targetCollection": "12",
		"account":          "5Claimer",
	}, false)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// A successful run over an exhausted snapshot serializes items as []
	assert.JSONEq(t, `{"items":[]}`, recorder.Body.String())
}

func TestReconcile_StatusSerialization(t *testing.T) {
	f := newFixture(t)

	f.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(&reconciler.Result{Status: reconciler.StatusSnapshotNotFound}, nil)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/reconcile", map[string]string{
		"sourceCollection": "7",
		"targetCollection": "12",
	}, false)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// A failed validation has a status and null items
	assert.JSONEq(t, `{"status":"snapshot reference not found","items":null}`, recorder.Body.String())
}

func TestReconcile_MissingFields(t *testing.T) {
	f := newFixture(t)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/reconcile", map[string]string{
		"sourceCollection": "7",
	}, false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestExecuteClaims_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/claims", map[string]string{
		"sourceCollection": "7",
		"targetCollection": "12",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestExecuteClaims(t *testing.T) {
	f := newFixture(t)

	item := domain.ItemID("5")
	f.orchestrator.EXPECT().ExecuteClaims(gomock.Any(), reconciler.Params{
		SourceCollection: "7",
		TargetCollection: "12",
		Account:          "5Claimer",
	}, &item).Return(&migration.ClaimRunResult{Outcomes: []migration.ClaimOutcome{{
		Item:    "5",
		Outcome: domain.TxOutcomeSuccess,
		TxHash:  "0xdead",
	}}}, nil)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/claims", map[string]string{
		"sourceCollection": "7",
		"targetCollection": "12",
		"account":          "5Claimer",
		"item":             "5",
	}, true)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body migration.ClaimRunResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Outcomes, 1)
	assert.Equal(t, domain.TxOutcomeSuccess, body.Outcomes[0].Outcome)
}

func TestExecuteClaims_ChainNotReady(t *testing.T) {
	f := newFixture(t)

	f.orchestrator.EXPECT().ExecuteClaims(gomock.Any(), gomock.Any(), nil).
		Return(nil, domain.ErrChainNotReady)

	recorder := f.request(http.MethodPost, "/api/v1/migrations/claims", map[string]string{
		"sourceCollection": "7",
		"targetCollection": "12",
	}, true)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestListClaims(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ListClaimRecords(gomock.Any(), domain.CollectionID("12"), 50, 0).
		Return([]schema.ClaimRecord{{ID: "rec-1", TargetCollection: "12"}}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/migrations/claims?targetCollection=12", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListClaims_ByAccount(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().ListClaimRecordsByAccount(gomock.Any(), "5Claimer", 10, 20).
		Return([]schema.ClaimRecord{}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/migrations/claims?account=5Claimer&limit=10&offset=20", nil, false)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListClaims_Validation(t *testing.T) {
	f := newFixture(t)

	// No filter
	recorder := f.request(http.MethodGet, "/api/v1/migrations/claims", nil, false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Limit over the cap
	recorder = f.request(http.MethodGet, "/api/v1/migrations/claims?targetCollection=12&limit=1000", nil, false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateCollection(t *testing.T) {
	f := newFixture(t)

	f.orchestrator.EXPECT().CreateCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, params substrate.CreateCollectionParams) (domain.CollectionID, *substrate.SubmissionResult, error) {
			assert.Equal(t, "ipfs://alpha", params.Metadata)
			// transferableItems and unlockedMetadata granted: bits 0 and 1
			// cleared, the rest locked
			assert.Equal(t, uint64(0b11100), params.Config.Settings)
			assert.Equal(t, domain.MintTypeIssuer, params.Config.MintSettings.MintType)
			return "42", &substrate.SubmissionResult{Outcome: domain.TxOutcomeSuccess, TxHash: "0xdead"}, nil
		})

	recorder := f.request(http.MethodPost, "/api/v1/collections", map[string]interface{}{
		"metadata":          "ipfs://alpha",
		"transferableItems": true,
		"unlockedMetadata":  true,
	}, true)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body rest.CreateCollectionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, domain.CollectionID("42"), body.Collection)
}

func TestCreateCollection_MintTypeValidation(t *testing.T) {
	f := newFixture(t)

	// holderOf without the holder collection
	recorder := f.request(http.MethodPost, "/api/v1/collections", map[string]interface{}{
		"mintType": "holderOf",
	}, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Unknown mint type
	recorder = f.request(http.MethodPost, "/api/v1/collections", map[string]interface{}{
		"mintType": "free-for-all",
	}, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSetTeam(t *testing.T) {
	f := newFixture(t)

	admin := "5Alice"
	f.orchestrator.EXPECT().SetTeam(gomock.Any(), domain.CollectionID("21"), domain.CollectionRoles{Admin: &admin}).
		Return(&substrate.SubmissionResult{Outcome: domain.TxOutcomeSuccess, TxHash: "0xdead"}, nil)

	recorder := f.request(http.MethodPut, "/api/v1/collections/nfts/21/team", map[string]string{
		"admin": "5Alice",
	}, true)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetTeam_NotOwned(t *testing.T) {
	f := newFixture(t)

	f.orchestrator.EXPECT().SetTeam(gomock.Any(), domain.CollectionID("21"), gomock.Any()).
		Return(nil, domain.ErrNotCollectionOwner)

	recorder := f.request(http.MethodPut, "/api/v1/collections/nfts/21/team", map[string]string{}, true)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAttachSnapshot(t *testing.T) {
	f := newFixture(t)

	f.orchestrator.EXPECT().AttachSnapshot(gomock.Any(), domain.PalletUniques, domain.CollectionID("7"), domain.SnapshotRef{
		Link:     "snapcid",
		Provider: "https://alt.example/",
	}).Return(&substrate.SubmissionResult{Outcome: domain.TxOutcomeSuccess}, nil)

	recorder := f.request(http.MethodPut, "/api/v1/collections/uniques/7/snapshot", map[string]string{
		"link":     "snapcid",
		"provider": "https://alt.example/",
	}, true)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
