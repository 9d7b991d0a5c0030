package mapper_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/mapper"
	"github.com/assethub-tools/nft-migrator/internal/mocks"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func record(id, owner, link string) domain.CollectionRecord {
	return domain.CollectionRecord{ID: domain.CollectionID(id), Owner: owner, MetadataLink: link}
}

func TestComputeMappings(t *testing.T) {
	sources := []domain.CollectionRecord{
		record("9", "5Alice", "ipfs://alpha"),
		record("4", "5Alice", "ipfs://beta"),
		record("1", "5Alice", "ipfs://gamma"),
	}
	targetsByOwner := map[string][]domain.CollectionRecord{
		"5Alice": {
			record("20", "5Alice", "ipfs://beta"),
			record("21", "5Alice", "ipfs://alpha"),
		},
	}

	mappings := mapper.ComputeMappings(sources, targetsByOwner)

	// Source order is preserved; unmatched sources are skipped
	require.Len(t, mappings, 2)
	assert.Equal(t, domain.CollectionID("9"), mappings[0].SourceCollection)
	assert.Equal(t, domain.CollectionID("21"), mappings[0].TargetCollection)
	assert.Equal(t, "5Alice", mappings[0].Owner)
	assert.Equal(t, "ipfs://alpha", mappings[0].MetadataLink)
	assert.Equal(t, domain.CollectionID("4"), mappings[1].SourceCollection)
	assert.Equal(t, domain.CollectionID("20"), mappings[1].TargetCollection)
}

func TestComputeMappings_DifferentOwnersNeverPair(t *testing.T) {
	sources := []domain.CollectionRecord{record("10", "5Alice", "ipfs://Qmabc")}
	targetsByOwner := map[string][]domain.CollectionRecord{
		"5Bob": {record("22", "5Bob", "ipfs://Qmabc")},
	}

	// An identical link under a different owner is not a migration target
	mappings := mapper.ComputeMappings(sources, targetsByOwner)
	assert.Empty(t, mappings)
}

func TestComputeMappings_MaxIDWinsTiesPerOwner(t *testing.T) {
	sources := []domain.CollectionRecord{
		record("1", "5Alice", "ipfs://alpha"),
		record("2", "5Bob", "ipfs://alpha"),
	}
	targetsByOwner := map[string][]domain.CollectionRecord{
		"5Alice": {
			record("30", "5Alice", "ipfs://alpha"),
			record("7", "5Alice", "ipfs://alpha"),
			record("102", "5Alice", "ipfs://alpha"),
		},
		"5Bob": {
			record("55", "5Bob", "ipfs://alpha"),
		},
	}

	mappings := mapper.ComputeMappings(sources, targetsByOwner)

	// Numeric comparison, not lexicographic: 102 beats 30. Bob's candidates
	// never compete with Alice's.
	require.Len(t, mappings, 2)
	assert.Equal(t, domain.CollectionID("102"), mappings[0].TargetCollection)
	assert.Equal(t, domain.CollectionID("55"), mappings[1].TargetCollection)
}

func TestComputeMappings_EmptyLinksNeverMatch(t *testing.T) {
	sources := []domain.CollectionRecord{
		record("1", "5Alice", ""),
		record("2", "5Alice", "ipfs://alpha"),
	}
	targetsByOwner := map[string][]domain.CollectionRecord{
		"5Alice": {
			record("10", "5Alice", ""),
			record("11", "5Alice", "ipfs://alpha"),
		},
	}

	mappings := mapper.ComputeMappings(sources, targetsByOwner)

	require.Len(t, mappings, 1)
	assert.Equal(t, domain.CollectionID("2"), mappings[0].SourceCollection)
}

func TestComputeMappings_ManyToOne(t *testing.T) {
	sources := []domain.CollectionRecord{
		record("5", "5Alice", "ipfs://alpha"),
		record("3", "5Alice", "ipfs://alpha"),
	}
	targetsByOwner := map[string][]domain.CollectionRecord{
		"5Alice": {record("40", "5Alice", "ipfs://alpha")},
	}

	mappings := mapper.ComputeMappings(sources, targetsByOwner)

	// Several sources may map onto the same target
	require.Len(t, mappings, 2)
	assert.Equal(t, domain.CollectionID("40"), mappings[0].TargetCollection)
	assert.Equal(t, domain.CollectionID("40"), mappings[1].TargetCollection)
}

func TestComputeMappings_Empty(t *testing.T) {
	mappings := mapper.ComputeMappings(nil, nil)
	assert.NotNil(t, mappings)
	assert.Empty(t, mappings)
}

func TestLoadMappedCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	fetcher := mocks.NewMockMetadataFetcher(ctrl)
	m := mapper.NewMapper(chain, fetcher)

	ctx := context.Background()

	chain.EXPECT().AllUniquesMetadataLinks(ctx).
		Return(map[domain.CollectionID]string{
			"9": "ipfs://alpha",
			"4": "ipfs://beta",
		}, nil)
	chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"9", "4"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{
			"9": {Owner: "5Alice"},
			"4": {Owner: "5Alice"},
		}, nil)

	// One target lookup per distinct owner
	chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, "5Alice").
		Return([]domain.CollectionID{"21"}, nil)
	chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletNfts, []domain.CollectionID{"21"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{
			"21": {Data: "ipfs://alpha"},
		}, nil)

	name := "Genesis"
	fetcher.EXPECT().FetchMetadata(ctx, "ipfs://alpha").
		Return(&domain.ParsedMetadata{Name: &name}, nil)

	mappings := m.LoadMappedCollections(ctx)
	require.Len(t, mappings, 1)
	assert.Equal(t, domain.CollectionID("9"), mappings[0].SourceCollection)
	assert.Equal(t, domain.CollectionID("21"), mappings[0].TargetCollection)
	assert.Equal(t, "5Alice", mappings[0].Owner)
	require.NotNil(t, mappings[0].JSON)
	assert.Equal(t, "Genesis", *mappings[0].JSON.Name)
}

func TestLoadMappedCollections_ChainErrorsFailSoft(t *testing.T) {
	ctx := context.Background()

	t.Run("listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chain := mocks.NewMockChainClient(ctrl)
		m := mapper.NewMapper(chain, mocks.NewMockMetadataFetcher(ctrl))

		chain.EXPECT().AllUniquesMetadataLinks(ctx).Return(nil, assert.AnError)

		mappings := m.LoadMappedCollections(ctx)
		assert.NotNil(t, mappings)
		assert.Empty(t, mappings)
	})

	t.Run("owner lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chain := mocks.NewMockChainClient(ctrl)
		m := mapper.NewMapper(chain, mocks.NewMockMetadataFetcher(ctrl))

		chain.EXPECT().AllUniquesMetadataLinks(ctx).
			Return(map[domain.CollectionID]string{"9": "ipfs://alpha"}, nil)
		chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"9"}).
			Return(map[domain.CollectionID]substrate.CollectionInfo{"9": {Owner: "5Alice"}}, nil)
		chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, "5Alice").
			Return(nil, assert.AnError)

		// A failed owner lookup aborts the whole run, never a partial result
		mappings := m.LoadMappedCollections(ctx)
		assert.NotNil(t, mappings)
		assert.Empty(t, mappings)
	})
}

func TestLoadMappedCollections_SkipsVanishedSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	fetcher := mocks.NewMockMetadataFetcher(ctrl)
	m := mapper.NewMapper(chain, fetcher)

	ctx := context.Background()

	// Collection 9 disappears between the metadata and the info query
	chain.EXPECT().AllUniquesMetadataLinks(ctx).
		Return(map[domain.CollectionID]string{"9": "ipfs://alpha"}, nil)
	chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"9"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{}, nil)

	mappings := m.LoadMappedCollections(ctx)
	assert.NotNil(t, mappings)
	assert.Empty(t, mappings)
}

func TestLoadMappedCollections_MetadataFetchFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	fetcher := mocks.NewMockMetadataFetcher(ctrl)
	m := mapper.NewMapper(chain, fetcher)

	ctx := context.Background()

	chain.EXPECT().AllUniquesMetadataLinks(ctx).
		Return(map[domain.CollectionID]string{"9": "ipfs://alpha"}, nil)
	chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"9"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{"9": {Owner: "5Alice"}}, nil)
	chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, "5Alice").
		Return([]domain.CollectionID{"21"}, nil)
	chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletNfts, []domain.CollectionID{"21"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{"21": {Data: "ipfs://alpha"}}, nil)

	fetcher.EXPECT().FetchMetadata(ctx, "ipfs://alpha").
		Return(nil, assert.AnError)

	mappings := m.LoadMappedCollections(ctx)
	require.Len(t, mappings, 1)
	assert.Nil(t, mappings[0].JSON)
}

func TestLoadMappedCollections_NothingToMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockChainClient(ctrl)
	m := mapper.NewMapper(chain, mocks.NewMockMetadataFetcher(ctrl))

	ctx := context.Background()

	chain.EXPECT().AllUniquesMetadataLinks(ctx).
		Return(map[domain.CollectionID]string{}, nil)
	chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{}, nil)

	mappings := m.LoadMappedCollections(ctx)
	assert.NotNil(t, mappings)
	assert.Empty(t, mappings)
}
