package substrate

import (
	"context"
	"fmt"
	"sort"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	subkey "github.com/vedhavyas/go-subkey/v2"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
)

// Config holds the chain connection configuration
type Config struct {
	// URL is the node websocket endpoint
	URL string
	// SS58Prefix is the network address format (0 Polkadot, 2 Kusama, 42 generic)
	SS58Prefix uint16
}

// CollectionInfo is the ownership record of a collection
type CollectionInfo struct {
	Owner string
	Items uint32
}

// MetadataRecord is the raw metadata pointer record of a collection. IsFrozen
// is only meaningful for the uniques pallet; nfts locks live in the collection
// config bitmask.
type MetadataRecord struct {
	Data     string
	IsFrozen bool
}

// RoleAssignment is one (account, role bitmask) entry from the nfts pallet's
// per-collection role storage
type RoleAssignment struct {
	Account string
	Roles   uint64
}

// ChainClient reads NFT pallet state from a chain node. All storage reads are
// point-in-time snapshots; callers tolerate staleness.
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// BestBlockNumber returns the current best block number
	BestBlockNumber(ctx context.Context) (uint32, error)

	// OwnedCollectionIDs lists the collections owned by an account in the
	// given pallet, sorted by id descending
	OwnedCollectionIDs(ctx context.Context, pallet domain.Pallet, owner string) ([]domain.CollectionID, error)

	// CollectionInfos batch-reads ownership records. Absent collections are
	// simply missing from the result map.
	CollectionInfos(ctx context.Context, pallet domain.Pallet, ids []domain.CollectionID) (map[domain.CollectionID]CollectionInfo, error)

	// CollectionMetadataRecords batch-reads metadata pointer records
	CollectionMetadataRecords(ctx context.Context, pallet domain.Pallet, ids []domain.CollectionID) (map[domain.CollectionID]MetadataRecord, error)

	// AllUniquesMetadataLinks reads every uniques collection metadata pointer,
	// keyed by collection id. Empty links are omitted.
	AllUniquesMetadataLinks(ctx context.Context) (map[domain.CollectionID]string, error)

	// CollectionConfig reads the nfts collection configuration record
	CollectionConfig(ctx context.Context, id domain.CollectionID) (*domain.CollectionConfig, error)

	// UniquesClassTeam reads the uniques class record's privileged accounts
	UniquesClassTeam(ctx context.Context, id domain.CollectionID) (*domain.CollectionRoles, error)

	// NftsRoleAssignments lists the per-account role bitmask entries of an
	// nfts collection
	NftsRoleAssignments(ctx context.Context, id domain.CollectionID) ([]RoleAssignment, error)

	// CollectionAttributes lists the collection-level attributes in the
	// CollectionOwner namespace
	CollectionAttributes(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) ([]domain.CollectionAttribute, error)

	// ItemsExist batch-checks item storage occupancy for the given keys,
	// aligned with the input order
	ItemsExist(ctx context.Context, collection domain.CollectionID, items []domain.ItemID) ([]bool, error)

	// DecodePreSignedMint decodes a hex-encoded SCALE PreSignedMint record
	DecodePreSignedMint(data string) (*domain.PreSignedMint, error)
}

type client struct {
	api        *gsrpc.SubstrateAPI
	meta       *types.Metadata
	ss58Prefix uint16
}

// NewClient connects to the chain node and caches runtime metadata
func NewClient(cfg *Config) (ChainClient, error) {
	api, err := gsrpc.NewSubstrateAPI(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node: %w", err)
	}

	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runtime metadata: %w", err)
	}

	return &client{
		api:        api,
		meta:       meta,
		ss58Prefix: cfg.SS58Prefix,
	}, nil
}

func palletName(pallet domain.Pallet) string {
	if pallet == domain.PalletUniques {
		return palletUniques
	}
	return palletNfts
}

func (c *client) accountID(address string) (types.AccountID, error) {
	var account types.AccountID
	_, pubkey, err := subkey.SS58Decode(address)
	if err != nil {
		return account, fmt.Errorf("failed to decode address %q: %w", address, err)
	}
	if len(pubkey) != 32 {
		return account, fmt.Errorf("unexpected public key length %d for address %q", len(pubkey), address)
	}
	copy(account[:], pubkey)
	return account, nil
}

func (c *client) address(account types.AccountID) string {
	return subkey.SS58Encode(account[:], c.ss58Prefix)
}

func (c *client) BestBlockNumber(_ context.Context) (uint32, error) {
	header, err := c.api.RPC.Chain.GetHeaderLatest()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch chain head: %w", err)
	}
	return uint32(header.Number), nil
}

// queryValues batch-reads storage values, returning them keyed by storage key hex
func (c *client) queryValues(keys []types.StorageKey) (map[string][]byte, error) {
	values := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	changeSets, err := c.api.RPC.State.QueryStorageAtLatest(keys)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-query storage: %w", err)
	}

	for _, set := range changeSets {
		for _, change := range set.Changes {
			if !change.HasStorageData {
				continue
			}
			values[change.StorageKey.Hex()] = change.StorageData
		}
	}

	return values, nil
}

func (c *client) OwnedCollectionIDs(_ context.Context, pallet domain.Pallet, owner string) ([]domain.CollectionID, error) {
	account, err := c.accountID(owner)
	if err != nil {
		return nil, err
	}

	item := storageCollectionAccount
	if pallet == domain.PalletUniques {
		item = storageClassAccount
	}

	prefix, err := mapKey(palletName(pallet), item, account)
	if err != nil {
		return nil, err
	}

	keys, err := c.api.RPC.State.GetKeysLatest(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned collections: %w", err)
	}

	ids := make([]domain.CollectionID, 0, len(keys))
	for _, key := range keys {
		id, err := tailU32(key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.CollectionID(fmt.Sprintf("%d", id)))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[j].Less(ids[i]) })

	return ids, nil
}

// collectionKeys builds storage keys for a per-collection map, aligned with ids
func (c *client) collectionKeys(pallet domain.Pallet, item string, ids []domain.CollectionID) ([]types.StorageKey, error) {
	keys := make([]types.StorageKey, 0, len(ids))
	for _, id := range ids {
		n, ok := id.Uint32()
		if !ok {
			return nil, fmt.Errorf("invalid collection id %q", id)
		}
		key, err := mapKey(palletName(pallet), item, types.NewU32(n))
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (c *client) CollectionInfos(_ context.Context, pallet domain.Pallet, ids []domain.CollectionID) (map[domain.CollectionID]CollectionInfo, error) {
	item := storageCollection
	if pallet == domain.PalletUniques {
		item = storageClass
	}

	keys, err := c.collectionKeys(pallet, item, ids)
	if err != nil {
		return nil, err
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	infos := make(map[domain.CollectionID]CollectionInfo, len(ids))
	for i, id := range ids {
		data, ok := values[keys[i].Hex()]
		if !ok {
			continue
		}

		if pallet == domain.PalletUniques {
			var details classDetails
			if err := codec.Decode(data, &details); err != nil {
				return nil, fmt.Errorf("failed to decode class record %s: %w", id, err)
			}
			infos[id] = CollectionInfo{Owner: c.address(details.Owner), Items: uint32(details.Items)}
		} else {
			var details collectionDetails
			if err := codec.Decode(data, &details); err != nil {
				return nil, fmt.Errorf("failed to decode collection record %s: %w", id, err)
			}
			infos[id] = CollectionInfo{Owner: c.address(details.Owner), Items: uint32(details.Items)}
		}
	}

	return infos, nil
}

func (c *client) CollectionMetadataRecords(_ context.Context, pallet domain.Pallet, ids []domain.CollectionID) (map[domain.CollectionID]MetadataRecord, error) {
	item := storageCollectionMetadataOf
	if pallet == domain.PalletUniques {
		item = storageClassMetadataOf
	}

	keys, err := c.collectionKeys(pallet, item, ids)
	if err != nil {
		return nil, err
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	records := make(map[domain.CollectionID]MetadataRecord, len(ids))
	for i, id := range ids {
		data, ok := values[keys[i].Hex()]
		if !ok {
			continue
		}

		if pallet == domain.PalletUniques {
			var record classMetadata
			if err := codec.Decode(data, &record); err != nil {
				return nil, fmt.Errorf("failed to decode class metadata %s: %w", id, err)
			}
			records[id] = MetadataRecord{Data: string(record.Data), IsFrozen: record.IsFrozen}
		} else {
			var record collectionMetadata
			if err := codec.Decode(data, &record); err != nil {
				return nil, fmt.Errorf("failed to decode collection metadata %s: %w", id, err)
			}
			records[id] = MetadataRecord{Data: string(record.Data)}
		}
	}

	return records, nil
}

func (c *client) AllUniquesMetadataLinks(ctx context.Context) (map[domain.CollectionID]string, error) {
	prefix := types.StorageKey(storagePrefix(palletUniques, storageClassMetadataOf))

	keys, err := c.api.RPC.State.GetKeysLatest(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list uniques metadata keys: %w", err)
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	links := make(map[domain.CollectionID]string, len(keys))
	for _, key := range keys {
		data, ok := values[key.Hex()]
		if !ok {
			continue
		}

		id, err := tailU32(key)
		if err != nil {
			return nil, err
		}

		var record classMetadata
		if err := codec.Decode(data, &record); err != nil {
			return nil, fmt.Errorf("failed to decode class metadata %d: %w", id, err)
		}
		if len(record.Data) == 0 {
			continue
		}

		links[domain.CollectionID(fmt.Sprintf("%d", id))] = string(record.Data)
	}

	logger.DebugCtx(ctx, "Loaded uniques metadata links", zap.Int("collections", len(links)))

	return links, nil
}

func (c *client) CollectionConfig(_ context.Context, id domain.CollectionID) (*domain.CollectionConfig, error) {
	n, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	key, err := mapKey(palletNfts, storageCollectionConfigOf, types.NewU32(n))
	if err != nil {
		return nil, err
	}

	var config collectionConfig
	found, err := c.api.RPC.State.GetStorageLatest(key, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection config %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	return config.toDomain(c.ss58Prefix), nil
}

func (c *client) UniquesClassTeam(_ context.Context, id domain.CollectionID) (*domain.CollectionRoles, error) {
	n, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	key, err := mapKey(palletUniques, storageClass, types.NewU32(n))
	if err != nil {
		return nil, err
	}

	var details classDetails
	found, err := c.api.RPC.State.GetStorageLatest(key, &details)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class record %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	admin := c.address(details.Admin)
	issuer := c.address(details.Issuer)
	freezer := c.address(details.Freezer)

	return &domain.CollectionRoles{Admin: &admin, Issuer: &issuer, Freezer: &freezer}, nil
}

func (c *client) NftsRoleAssignments(_ context.Context, id domain.CollectionID) ([]RoleAssignment, error) {
	n, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	prefix, err := mapKey(palletNfts, storageCollectionRoleOf, types.NewU32(n))
	if err != nil {
		return nil, err
	}

	keys, err := c.api.RPC.State.GetKeysLatest(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list role entries: %w", err)
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	assignments := make([]RoleAssignment, 0, len(keys))
	for _, key := range keys {
		data, ok := values[key.Hex()]
		if !ok {
			continue
		}

		account, err := tailAccountID(key)
		if err != nil {
			return nil, err
		}

		var mask types.U8
		if err := codec.Decode(data, &mask); err != nil {
			return nil, fmt.Errorf("failed to decode role mask: %w", err)
		}

		assignments = append(assignments, RoleAssignment{
			Account: c.address(account),
			Roles:   uint64(mask),
		})
	}

	return assignments, nil
}

func (c *client) CollectionAttributes(_ context.Context, pallet domain.Pallet, id domain.CollectionID) ([]domain.CollectionAttribute, error) {
	n, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	var prefix types.StorageKey
	var keyOffset int
	var err error

	if pallet == domain.PalletUniques {
		// (class, Option<item>=None, key): 32 prefix + 20 + 17, then 16-byte
		// hash before the encoded key bytes
		prefix, err = mapKey(palletUniques, storageAttribute, types.NewU32(n), optionNone{})
		keyOffset = 32 + 20 + 17 + 16
	} else {
		// (collection, Option<item>=None, CollectionOwner, key)
		prefix, err = mapKey(palletNfts, storageAttribute, types.NewU32(n), optionNone{}, attributeNamespaceCollectionOwner{})
		keyOffset = 32 + 20 + 17 + 17 + 16
	}
	if err != nil {
		return nil, err
	}

	keys, err := c.api.RPC.State.GetKeysLatest(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list attribute entries: %w", err)
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	attributes := make([]domain.CollectionAttribute, 0, len(keys))
	for _, key := range keys {
		data, ok := values[key.Hex()]
		if !ok {
			continue
		}

		keyText, err := tailBytes(key, keyOffset)
		if err != nil {
			return nil, err
		}

		var value attributeValue
		if err := codec.Decode(data, &value); err != nil {
			return nil, fmt.Errorf("failed to decode attribute value: %w", err)
		}

		attributes = append(attributes, domain.CollectionAttribute{
			Key:   string(keyText),
			Value: string(value.Data),
		})
	}

	return attributes, nil
}

func (c *client) ItemsExist(_ context.Context, collection domain.CollectionID, items []domain.ItemID) ([]bool, error) {
	n, ok := collection.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", collection)
	}

	keys := make([]types.StorageKey, 0, len(items))
	for _, item := range items {
		itemNumber, ok := item.Uint32()
		if !ok {
			return nil, fmt.Errorf("invalid item id %q", item)
		}
		key, err := mapKey(palletNfts, storageItem, types.NewU32(n), types.NewU32(itemNumber))
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	values, err := c.queryValues(keys)
	if err != nil {
		return nil, err
	}

	exists := make([]bool, len(items))
	for i := range items {
		_, exists[i] = values[keys[i].Hex()]
	}

	return exists, nil
}

func (c *client) DecodePreSignedMint(data string) (*domain.PreSignedMint, error) {
	raw, err := hexDecode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode presigned data: %w", err)
	}

	var record preSignedMint
	if err := codec.Decode(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode presigned mint record: %w", err)
	}

	return record.toDomain(c.ss58Prefix), nil
}
