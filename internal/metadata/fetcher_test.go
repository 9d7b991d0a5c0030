package metadata_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/metadata"
	"github.com/assethub-tools/nft-migrator/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// respondJSON makes a GetJSON expectation deliver the given document
func respondJSON(payload interface{}, found bool, err error) func(ctx context.Context, url string, result interface{}) (bool, error) {
	return func(_ context.Context, _ string, result interface{}) (bool, error) {
		if found && err == nil {
			*(result.(*interface{})) = payload
		}
		return found, err
	}
}

func TestFetchMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	resolver.EXPECT().MetadataURL("cid").Return("https://gateway.example/cid")
	resolver.EXPECT().Hash("ipfs://imagecid").Return("imagecid")
	resolver.EXPECT().ImageURL("imagecid").Return("https://images.example/ipfs/imagecid")
	httpClient.EXPECT().GetJSON(gomock.Any(), "https://gateway.example/cid", gomock.Any()).
		DoAndReturn(respondJSON(map[string]interface{}{
			"name":        "Genesis",
			"description": "First collection",
			"image":       "ipfs://imagecid",
		}, true, nil))

	parsed, err := fetcher.FetchMetadata(context.Background(), "cid")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "Genesis", *parsed.Name)
	assert.Equal(t, "First collection", *parsed.Description)
	assert.Equal(t, "imagecid", *parsed.Image)
	assert.Equal(t, "https://images.example/ipfs/imagecid", *parsed.ImageURL)
}

func TestFetchMetadata_Absence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	// Unresolvable cid
	resolver.EXPECT().MetadataURL("").Return("")
	parsed, err := fetcher.FetchMetadata(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	// Document not found at the gateway
	resolver.EXPECT().MetadataURL("missing").Return("https://gateway.example/missing")
	httpClient.EXPECT().GetJSON(gomock.Any(), "https://gateway.example/missing", gomock.Any()).
		DoAndReturn(respondJSON(nil, false, nil))
	parsed, err = fetcher.FetchMetadata(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	// Non-object payload
	resolver.EXPECT().MetadataURL("list").Return("https://gateway.example/list")
	httpClient.EXPECT().GetJSON(gomock.Any(), "https://gateway.example/list", gomock.Any()).
		DoAndReturn(respondJSON([]interface{}{"not", "an", "object"}, true, nil))
	parsed, err = fetcher.FetchMetadata(context.Background(), "list")
	assert.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestFetchMetadata_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	resolver.EXPECT().MetadataURL("cid").Return("https://gateway.example/cid")
	httpClient.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection refused"))

	parsed, err := fetcher.FetchMetadata(context.Background(), "cid")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestFetchSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	resolver.EXPECT().FetchableURL("snapcid", "https://alt.example/ipfs/").
		Return("https://alt.example/ipfs/snapcid")
	httpClient.EXPECT().GetJSON(gomock.Any(), "https://alt.example/ipfs/snapcid", gomock.Any()).
		DoAndReturn(respondJSON(map[string]interface{}{
			"signer":           "5Signer",
			"sourceCollection": "7",
			"targetCollection": "12",
			"signatures": []interface{}{
				map[string]interface{}{"data": "0x01", "signature": "0xaa"},
				map[string]interface{}{"data": "0x02", "signature": "0xbb"},
			},
		}, true, nil))

	doc, err := fetcher.FetchSnapshot(context.Background(), "snapcid", "https://alt.example/ipfs/")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "5Signer", doc.Signer)
	assert.Equal(t, "7", string(doc.SourceCollection))
	assert.Equal(t, "12", string(doc.TargetCollection))
	require.Len(t, doc.Signatures, 2)
	assert.Equal(t, "0x01", doc.Signatures[0].Data)
	assert.Equal(t, "0xbb", doc.Signatures[1].Signature)
}

func TestFetchSnapshot_DropsMalformedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	resolver.EXPECT().FetchableURL("snapcid", "").Return("https://gateway.example/snapcid")
	httpClient.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(map[string]interface{}{
			"signer": "5Signer",
			"signatures": []interface{}{
				"not an object",
				map[string]interface{}{"data": "", "signature": "0xaa"},
				map[string]interface{}{"data": "0x01"},
				map[string]interface{}{"data": "0x02", "signature": "0xbb"},
			},
		}, true, nil))

	doc, err := fetcher.FetchSnapshot(context.Background(), "snapcid", "")
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Len(t, doc.Signatures, 1)
	assert.Equal(t, "0x02", doc.Signatures[0].Data)
}

func TestFetchSnapshot_InvalidShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	cases := []interface{}{
		[]interface{}{"array document"},
		map[string]interface{}{"signatures": []interface{}{}},
		map[string]interface{}{"signer": ""},
		map[string]interface{}{"signer": "5Signer", "signatures": "not a list"},
	}

	for _, payload := range cases {
		resolver.EXPECT().FetchableURL("snapcid", "").Return("https://gateway.example/snapcid")
		httpClient.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(payload, true, nil))

		doc, err := fetcher.FetchSnapshot(context.Background(), "snapcid", "")
		assert.ErrorIs(t, err, metadata.ErrInvalidSnapshot)
		assert.Nil(t, doc)
	}
}

func TestFetchSnapshot_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := mocks.NewMockURIResolver(ctrl)
	fetcher := metadata.NewFetcher(httpClient, resolver)

	resolver.EXPECT().FetchableURL("gone", "").Return("https://gateway.example/gone")
	httpClient.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(nil, false, nil))

	doc, err := fetcher.FetchSnapshot(context.Background(), "gone", "")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}
