package mapper

import (
	"context"
	"sort"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/metadata"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
)

const metadataFetchConcurrency = 8

// Mapper pairs source (uniques) collections with their migration targets (nfts)
// by metadata link, within the same owner
//
//go:generate mockgen -source=mapper.go -destination=../mocks/mapper.go -package=mocks -mock_names=Mapper=MockMapper
type Mapper interface {
	// LoadMappedCollections computes the collection pairs across the whole
	// chain, newest source first, with parsed metadata attached where it
	// resolves. Chain query failures degrade to an empty list; partial
	// results are never returned.
	LoadMappedCollections(ctx context.Context) []domain.MappedCollection
}

type mapper struct {
	chain   substrate.ChainClient
	fetcher metadata.Fetcher
	pool    pond.Pool
}

// NewMapper creates a collection mapper
func NewMapper(chain substrate.ChainClient, fetcher metadata.Fetcher) Mapper {
	return &mapper{
		chain:   chain,
		fetcher: fetcher,
		pool:    pond.NewPool(metadataFetchConcurrency),
	}
}

// ownerLink keys target candidates: only targets owned by the source's owner
// and carrying its exact metadata link qualify
type ownerLink struct {
	owner string
	link  string
}

// ComputeMappings pairs each source with the target owned by the same account
// and carrying a byte-identical, non-empty metadata link. Two collections with
// equal links but different owners never pair. When several targets of one
// owner share a link the one with the greatest id wins, so re-created
// collections shadow their predecessors. Source order is preserved. The result
// is deterministic for a given input.
func ComputeMappings(sources []domain.CollectionRecord, targetsByOwner map[string][]domain.CollectionRecord) []domain.MappedCollection {
	bestTarget := make(map[ownerLink]domain.CollectionID)
	for owner, targets := range targetsByOwner {
		for _, target := range targets {
			if target.MetadataLink == "" {
				continue
			}
			key := ownerLink{owner: owner, link: target.MetadataLink}
			current, ok := bestTarget[key]
			if !ok || current.Less(target.ID) {
				bestTarget[key] = target.ID
			}
		}
	}

	mappings := make([]domain.MappedCollection, 0, len(sources))
	for _, source := range sources {
		if source.MetadataLink == "" {
			continue
		}
		target, ok := bestTarget[ownerLink{owner: source.Owner, link: source.MetadataLink}]
		if !ok {
			continue
		}
		mappings = append(mappings, domain.MappedCollection{
			SourceCollection: source.ID,
			TargetCollection: target,
			Owner:            source.Owner,
			MetadataLink:     source.MetadataLink,
		})
	}

	return mappings
}

func (m *mapper) LoadMappedCollections(ctx context.Context) []domain.MappedCollection {
	mappings, err := m.load(ctx)
	if err != nil {
		// Any failed lookup aborts the whole computation; callers get
		// "no mappings found" rather than a partial view
		logger.WarnCtx(ctx, "Mapping computation failed", zap.Error(err))
		return []domain.MappedCollection{}
	}
	return mappings
}

func (m *mapper) load(ctx context.Context) ([]domain.MappedCollection, error) {
	links, err := m.chain.AllUniquesMetadataLinks(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.CollectionID, 0, len(links))
	for id := range links {
		ids = append(ids, id)
	}
	// Newest first, matching the owned-collection listings
	sort.Slice(ids, func(i, j int) bool { return ids[j].Less(ids[i]) })

	infos, err := m.chain.CollectionInfos(ctx, domain.PalletUniques, ids)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.CollectionRecord, 0, len(ids))
	targetsByOwner := make(map[string][]domain.CollectionRecord)
	for _, id := range ids {
		info, ok := infos[id]
		if !ok {
			// Vanished between the two queries
			continue
		}
		sources = append(sources, domain.CollectionRecord{
			ID:           id,
			Owner:        info.Owner,
			MetadataLink: links[id],
		})

		if _, seen := targetsByOwner[info.Owner]; seen {
			continue
		}
		targets, err := m.ownedLinks(ctx, domain.PalletNfts, info.Owner)
		if err != nil {
			return nil, err
		}
		targetsByOwner[info.Owner] = targets
	}

	mappings := ComputeMappings(sources, targetsByOwner)
	m.attachMetadata(ctx, mappings)

	logger.DebugCtx(ctx, "Computed collection mappings",
		zap.Int("sources", len(sources)),
		zap.Int("owners", len(targetsByOwner)),
		zap.Int("mappings", len(mappings)),
	)

	return mappings, nil
}

// ownedLinks loads the (id, metadata link) view of an account's collections in
// one pallet, newest first
func (m *mapper) ownedLinks(ctx context.Context, pallet domain.Pallet, owner string) ([]domain.CollectionRecord, error) {
	ids, err := m.chain.OwnedCollectionIDs(ctx, pallet, owner)
	if err != nil {
		return nil, err
	}

	metadataRecords, err := m.chain.CollectionMetadataRecords(ctx, pallet, ids)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CollectionRecord, 0, len(ids))
	for _, id := range ids {
		record := domain.CollectionRecord{ID: id, Owner: owner}
		if meta, ok := metadataRecords[id]; ok {
			record.MetadataLink = meta.Data
		}
		records = append(records, record)
	}
	return records, nil
}

// attachMetadata resolves the shared metadata document of each pair.
// Individual fetch failures leave the pair without a document.
func (m *mapper) attachMetadata(ctx context.Context, mappings []domain.MappedCollection) {
	tasks := make([]pond.Task, len(mappings))
	for i := range mappings {
		index := i
		tasks[index] = m.pool.SubmitErr(func() error {
			parsed, err := m.fetcher.FetchMetadata(ctx, mappings[index].MetadataLink)
			if err != nil {
				return err
			}
			mappings[index].JSON = parsed
			return nil
		})
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			logger.WarnCtx(ctx, "Metadata fetch failed",
				zap.String("link", mappings[i].MetadataLink),
				zap.Error(err),
			)
		}
	}
}
