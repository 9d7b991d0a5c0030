package collections_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/mocks"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const ownerAddress = "5Owner"

type fixture struct {
	chain   *mocks.MockChainClient
	fetcher *mocks.MockMetadataFetcher
	reader  collections.Reader
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		chain:   mocks.NewMockChainClient(ctrl),
		fetcher: mocks.NewMockMetadataFetcher(ctrl),
	}
	f.reader = collections.NewReader(f.chain, f.fetcher)
	return f
}

func TestOwnedCollections_Uniques(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletUniques, ownerAddress).
		Return([]domain.CollectionID{"9", "4"}, nil)
	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"9", "4"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{
			"9": {Owner: ownerAddress, Items: 10},
			"4": {Owner: ownerAddress, Items: 3},
		}, nil)
	f.chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletUniques, []domain.CollectionID{"9", "4"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{
			"9": {Data: "ipfs://alpha", IsFrozen: true},
			"4": {Data: "ipfs://beta"},
		}, nil)

	// The link of collection 9 already lives on a same-owner nfts collection
	f.chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, ownerAddress).
		Return([]domain.CollectionID{"21"}, nil)
	f.chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletNfts, []domain.CollectionID{"21"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{"21": {Data: "ipfs://alpha"}}, nil)

	name := "Genesis"
	f.fetcher.EXPECT().FetchMetadata(ctx, "ipfs://alpha").
		Return(&domain.ParsedMetadata{Name: &name}, nil)
	f.fetcher.EXPECT().FetchMetadata(ctx, "ipfs://beta").
		Return(nil, nil)

	records, err := f.reader.OwnedCollections(ctx, domain.PalletUniques, ownerAddress)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.CollectionID("9"), records[0].ID)
	assert.Equal(t, uint32(10), records[0].ItemCount)
	assert.True(t, records[0].MetadataLocked)
	assert.True(t, records[0].AttributesLocked)
	assert.True(t, records[0].IsMapped)
	require.NotNil(t, records[0].JSON)
	assert.Equal(t, "Genesis", *records[0].JSON.Name)

	assert.Equal(t, domain.CollectionID("4"), records[1].ID)
	assert.False(t, records[1].MetadataLocked)
	assert.False(t, records[1].IsMapped)
	assert.Nil(t, records[1].JSON)
}

func TestOwnedCollections_NftsConfigLocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, ownerAddress).
		Return([]domain.CollectionID{"21", "20"}, nil)
	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletNfts, []domain.CollectionID{"21", "20"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{
			"21": {Owner: ownerAddress},
			"20": {Owner: ownerAddress},
		}, nil)
	f.chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletNfts, []domain.CollectionID{"21", "20"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{}, nil)

	// Inverted polarity: bit 1 set locks metadata, bit 2 set locks attributes
	f.chain.EXPECT().CollectionConfig(ctx, domain.CollectionID("21")).
		Return(&domain.CollectionConfig{Settings: 1 << 1}, nil)
	f.chain.EXPECT().CollectionConfig(ctx, domain.CollectionID("20")).
		Return(&domain.CollectionConfig{Settings: 1 << 2}, nil)

	records, err := f.reader.OwnedCollections(ctx, domain.PalletNfts, ownerAddress)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].MetadataLocked)
	assert.False(t, records[0].AttributesLocked)
	assert.False(t, records[1].MetadataLocked)
	assert.True(t, records[1].AttributesLocked)
}

func TestOwnedCollections_SkipsVanished(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().OwnedCollectionIDs(ctx, domain.PalletNfts, ownerAddress).
		Return([]domain.CollectionID{"21", "20"}, nil)
	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletNfts, []domain.CollectionID{"21", "20"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{"20": {Owner: ownerAddress}}, nil)
	f.chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletNfts, []domain.CollectionID{"21", "20"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{}, nil)
	f.chain.EXPECT().CollectionConfig(ctx, domain.CollectionID("20")).Return(nil, nil)

	records, err := f.reader.OwnedCollections(ctx, domain.PalletNfts, ownerAddress)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CollectionID("20"), records[0].ID)
}

func TestCollection_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletUniques, []domain.CollectionID{"404"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{}, nil)
	f.chain.EXPECT().CollectionMetadataRecords(ctx, domain.PalletUniques, []domain.CollectionID{"404"}).
		Return(map[domain.CollectionID]substrate.MetadataRecord{}, nil)

	record, err := f.reader.Collection(ctx, domain.PalletUniques, "404")
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	assert.Nil(t, record)
}

func TestRoles_NftsFoldsAssignments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Role bit order: Issuer (1), Freezer (2), Admin (4)
	f.chain.EXPECT().NftsRoleAssignments(ctx, domain.CollectionID("21")).
		Return([]substrate.RoleAssignment{
			{Account: "5Alice", Roles: 0b101}, // issuer + admin
			{Account: "5Bob", Roles: 0b010},   // freezer
		}, nil)

	roles, err := f.reader.Roles(ctx, domain.PalletNfts, "21")
	require.NoError(t, err)
	require.NotNil(t, roles)
	require.NotNil(t, roles.Admin)
	require.NotNil(t, roles.Issuer)
	require.NotNil(t, roles.Freezer)
	assert.Equal(t, "5Alice", *roles.Admin)
	assert.Equal(t, "5Alice", *roles.Issuer)
	assert.Equal(t, "5Bob", *roles.Freezer)
}

func TestRoles_NftsDisabledRolesStayNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().NftsRoleAssignments(ctx, domain.CollectionID("21")).
		Return([]substrate.RoleAssignment{{Account: "5Alice", Roles: 0b001}}, nil)

	roles, err := f.reader.Roles(ctx, domain.PalletNfts, "21")
	require.NoError(t, err)
	assert.NotNil(t, roles.Issuer)
	assert.Nil(t, roles.Admin)
	assert.Nil(t, roles.Freezer)
}

func TestRoles_Uniques(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := "5Alice"
	f.chain.EXPECT().UniquesClassTeam(ctx, domain.CollectionID("7")).
		Return(&domain.CollectionRoles{Admin: &admin}, nil)

	roles, err := f.reader.Roles(ctx, domain.PalletUniques, "7")
	require.NoError(t, err)
	assert.Equal(t, "5Alice", *roles.Admin)

	f.chain.EXPECT().UniquesClassTeam(ctx, domain.CollectionID("404")).
		Return(nil, nil)

	_, err = f.reader.Roles(ctx, domain.PalletUniques, "404")
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestSnapshotRef(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().CollectionAttributes(ctx, domain.PalletUniques, domain.CollectionID("7")).
		Return([]domain.CollectionAttribute{
			{Key: "SNAPSHOT", Value: "snapcid"},
			{Key: "PROVIDER", Value: "https://alt.example/"},
			{Key: "unrelated", Value: "ignored"},
		}, nil)

	ref, err := f.reader.SnapshotRef(ctx, domain.PalletUniques, "7")
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "snapcid", ref.Link)
	assert.Equal(t, "https://alt.example/", ref.Provider)
}

func TestSnapshotRef_NoLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A provider without a link is not a snapshot reference
	f.chain.EXPECT().CollectionAttributes(ctx, domain.PalletUniques, domain.CollectionID("7")).
		Return([]domain.CollectionAttribute{{Key: "PROVIDER", Value: "https://alt.example/"}}, nil)

	ref, err := f.reader.SnapshotRef(ctx, domain.PalletUniques, "7")
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestValidateOwned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletNfts, []domain.CollectionID{"21"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{"21": {Owner: ownerAddress}}, nil).
		Times(2)

	assert.NoError(t, f.reader.ValidateOwned(ctx, domain.PalletNfts, "21", ownerAddress))
	assert.ErrorIs(t, f.reader.ValidateOwned(ctx, domain.PalletNfts, "21", "5Other"),
		domain.ErrNotCollectionOwner)

	f.chain.EXPECT().CollectionInfos(ctx, domain.PalletNfts, []domain.CollectionID{"404"}).
		Return(map[domain.CollectionID]substrate.CollectionInfo{}, nil)
	assert.ErrorIs(t, f.reader.ValidateOwned(ctx, domain.PalletNfts, "404", ownerAddress),
		domain.ErrCollectionNotFound)
}
