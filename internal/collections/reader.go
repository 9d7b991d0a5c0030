package collections

import (
	"context"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/bitflags"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/metadata"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
)

const metadataFetchConcurrency = 8

// Reader assembles collection views out of raw chain state
//
//go:generate mockgen -source=reader.go -destination=../mocks/collection_reader.go -package=mocks -mock_names=Reader=MockCollectionReader
type Reader interface {
	// OwnedCollections lists the collections an account owns in one pallet,
	// newest first, with parsed metadata attached where it resolves. For the
	// uniques pallet each record is flagged when a same-owner nfts collection
	// already carries the same metadata link.
	OwnedCollections(ctx context.Context, pallet domain.Pallet, owner string) ([]domain.CollectionRecord, error)

	// Collection loads a single collection record.
	// Returns domain.ErrCollectionNotFound when it does not exist.
	Collection(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.CollectionRecord, error)

	// Roles loads the privileged accounts of a collection
	Roles(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.CollectionRoles, error)

	// Attributes lists the collection-level attributes in the owner namespace
	Attributes(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) ([]domain.CollectionAttribute, error)

	// SnapshotRef extracts the snapshot reference attributes of a collection.
	// Returns nil when no snapshot link is attached.
	SnapshotRef(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.SnapshotRef, error)

	// ValidateOwned checks that the collection exists and is owned by the
	// given account
	ValidateOwned(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, owner string) error
}

type reader struct {
	chain   substrate.ChainClient
	fetcher metadata.Fetcher
	pool    pond.Pool
}

// NewReader creates a collection reader
func NewReader(chain substrate.ChainClient, fetcher metadata.Fetcher) Reader {
	return &reader{
		chain:   chain,
		fetcher: fetcher,
		pool:    pond.NewPool(metadataFetchConcurrency),
	}
}

func (r *reader) OwnedCollections(ctx context.Context, pallet domain.Pallet, owner string) ([]domain.CollectionRecord, error) {
	ids, err := r.chain.OwnedCollectionIDs(ctx, pallet, owner)
	if err != nil {
		return nil, err
	}

	records, err := r.loadRecords(ctx, pallet, ids)
	if err != nil {
		return nil, err
	}

	if pallet == domain.PalletUniques {
		if err := r.flagMapped(ctx, owner, records); err != nil {
			return nil, err
		}
	}

	r.attachMetadata(ctx, records)

	logger.DebugCtx(ctx, "Loaded owned collections",
		zap.String("pallet", string(pallet)),
		zap.String("owner", owner),
		zap.Int("collections", len(records)),
	)

	return records, nil
}

// loadRecords batch-reads ownership and metadata records and combines them,
// preserving the id order. Collections that vanished between the key listing
// and the batch read are skipped.
func (r *reader) loadRecords(ctx context.Context, pallet domain.Pallet, ids []domain.CollectionID) ([]domain.CollectionRecord, error) {
	infos, err := r.chain.CollectionInfos(ctx, pallet, ids)
	if err != nil {
		return nil, err
	}

	metadataRecords, err := r.chain.CollectionMetadataRecords(ctx, pallet, ids)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CollectionRecord, 0, len(ids))
	for _, id := range ids {
		info, ok := infos[id]
		if !ok {
			continue
		}

		record := domain.CollectionRecord{
			ID:        id,
			Owner:     info.Owner,
			ItemCount: info.Items,
		}
		if meta, ok := metadataRecords[id]; ok {
			record.MetadataLink = meta.Data
			record.MetadataLocked = meta.IsFrozen
			record.AttributesLocked = meta.IsFrozen
		}
		records = append(records, record)
	}

	if pallet == domain.PalletNfts {
		if err := r.applyConfigLocks(ctx, records); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// applyConfigLocks derives the lock flags of nfts collections from their
// configuration bitmask
func (r *reader) applyConfigLocks(ctx context.Context, records []domain.CollectionRecord) error {
	settings := bitflags.CollectionSettings()

	tasks := make([]pond.Task, len(records))
	for i := range records {
		index := i
		tasks[index] = r.pool.SubmitErr(func() error {
			config, err := r.chain.CollectionConfig(ctx, records[index].ID)
			if err != nil || config == nil {
				return err
			}

			metadataUnlocked, err := settings.Has(bitflags.SettingUnlockedMetadata, config.Settings)
			if err != nil {
				return err
			}
			attributesUnlocked, err := settings.Has(bitflags.SettingUnlockedAttributes, config.Settings)
			if err != nil {
				return err
			}

			records[index].MetadataLocked = !metadataUnlocked
			records[index].AttributesLocked = !attributesUnlocked
			return nil
		})
	}

	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// flagMapped marks uniques collections whose metadata link already appears on
// a same-owner nfts collection
func (r *reader) flagMapped(ctx context.Context, owner string, records []domain.CollectionRecord) error {
	targetIDs, err := r.chain.OwnedCollectionIDs(ctx, domain.PalletNfts, owner)
	if err != nil {
		return err
	}

	targetMetadata, err := r.chain.CollectionMetadataRecords(ctx, domain.PalletNfts, targetIDs)
	if err != nil {
		return err
	}

	links := make(map[string]bool, len(targetMetadata))
	for _, meta := range targetMetadata {
		if meta.Data != "" {
			links[meta.Data] = true
		}
	}

	for i := range records {
		records[i].IsMapped = records[i].MetadataLink != "" && links[records[i].MetadataLink]
	}
	return nil
}

// attachMetadata fetches and attaches parsed metadata documents. Fetches run
// concurrently and individual failures leave the record without a document
// rather than failing the listing.
func (r *reader) attachMetadata(ctx context.Context, records []domain.CollectionRecord) {
	tasks := make([]pond.Task, len(records))
	for i := range records {
		index := i
		tasks[index] = r.pool.SubmitErr(func() error {
			if records[index].MetadataLink == "" {
				return nil
			}
			parsed, err := r.fetcher.FetchMetadata(ctx, records[index].MetadataLink)
			if err != nil {
				return err
			}
			records[index].JSON = parsed
			return nil
		})
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			logger.WarnCtx(ctx, "Metadata fetch failed",
				zap.String("collection", string(records[i].ID)),
				zap.Error(err),
			)
		}
	}
}

func (r *reader) Collection(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.CollectionRecord, error) {
	records, err := r.loadRecords(ctx, pallet, []domain.CollectionID{id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrCollectionNotFound
	}

	r.attachMetadata(ctx, records)

	return &records[0], nil
}

func (r *reader) Roles(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.CollectionRoles, error) {
	if pallet == domain.PalletUniques {
		roles, err := r.chain.UniquesClassTeam(ctx, id)
		if err != nil {
			return nil, err
		}
		if roles == nil {
			return nil, domain.ErrCollectionNotFound
		}
		return roles, nil
	}

	assignments, err := r.chain.NftsRoleAssignments(ctx, id)
	if err != nil {
		return nil, err
	}

	decoder := bitflags.Roles()
	roles := &domain.CollectionRoles{}
	for _, assignment := range assignments {
		account := assignment.Account

		if has, err := decoder.Has(bitflags.RoleAdmin, assignment.Roles); err != nil {
			return nil, err
		} else if has && roles.Admin == nil {
			roles.Admin = &account
		}
		if has, err := decoder.Has(bitflags.RoleIssuer, assignment.Roles); err != nil {
			return nil, err
		} else if has && roles.Issuer == nil {
			roles.Issuer = &account
		}
		if has, err := decoder.Has(bitflags.RoleFreezer, assignment.Roles); err != nil {
			return nil, err
		} else if has && roles.Freezer == nil {
			roles.Freezer = &account
		}
	}

	return roles, nil
}

func (r *reader) Attributes(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) ([]domain.CollectionAttribute, error) {
	return r.chain.CollectionAttributes(ctx, pallet, id)
}

func (r *reader) SnapshotRef(ctx context.Context, pallet domain.Pallet, id domain.CollectionID) (*domain.SnapshotRef, error) {
	attributes, err := r.chain.CollectionAttributes(ctx, pallet, id)
	if err != nil {
		return nil, err
	}

	ref := &domain.SnapshotRef{}
	for _, attribute := range attributes {
		switch attribute.Key {
		case domain.AttributeKeySnapshot:
			ref.Link = attribute.Value
		case domain.AttributeKeyProvider:
			ref.Provider = attribute.Value
		}
	}

	if ref.Link == "" {
		return nil, nil
	}
	return ref, nil
}

func (r *reader) ValidateOwned(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, owner string) error {
	infos, err := r.chain.CollectionInfos(ctx, pallet, []domain.CollectionID{id})
	if err != nil {
		return err
	}

	info, ok := infos[id]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	if info.Owner != owner {
		return domain.ErrNotCollectionOwner
	}
	return nil
}
