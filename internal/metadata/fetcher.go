package metadata

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/adapter"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/uri"
)

// ErrInvalidSnapshot is returned when a snapshot document was fetched but does
// not have the required shape
var ErrInvalidSnapshot = errors.New("snapshot document malformed")

// Fetcher retrieves and normalizes JSON documents from content gateways
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// FetchMetadata fetches and normalizes a collection/item metadata
	// document. An unresolvable cid, missing document or non-object payload
	// yields (nil, nil): absence is not an error.
	FetchMetadata(ctx context.Context, cid string) (*domain.ParsedMetadata, error)

	// FetchSnapshot fetches and shape-validates a migration snapshot
	// document. provider, when non-empty, overrides the gateway base.
	// A missing document yields (nil, nil); a document with the wrong shape
	// yields ErrInvalidSnapshot. Malformed signature entries are dropped
	// without failing the document.
	FetchSnapshot(ctx context.Context, link string, provider string) (*domain.SnapshotDocument, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	resolver   uri.Resolver
}

// NewFetcher creates a new metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, resolver uri.Resolver) Fetcher {
	return &fetcher{
		httpClient: httpClient,
		resolver:   resolver,
	}
}

func (f *fetcher) FetchMetadata(ctx context.Context, cid string) (*domain.ParsedMetadata, error) {
	url := f.resolver.MetadataURL(cid)
	if url == "" {
		return nil, nil
	}

	var raw interface{}
	found, err := f.httpClient.GetJSON(ctx, url, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	parsed := &domain.ParsedMetadata{
		Name:        stringOrNothing(doc["name"]),
		Description: stringOrNothing(doc["description"]),
	}
	if image := stringOrNothing(doc["image"]); image != nil {
		if hash := f.resolver.Hash(*image); hash != "" {
			parsed.Image = &hash
			if url := f.resolver.ImageURL(hash); url != "" {
				parsed.ImageURL = &url
			}
		}
	}

	return parsed, nil
}

func (f *fetcher) FetchSnapshot(ctx context.Context, link string, provider string) (*domain.SnapshotDocument, error) {
	url := f.resolver.FetchableURL(link, provider)
	if url == "" {
		return nil, nil
	}

	var raw interface{}
	found, err := f.httpClient.GetJSON(ctx, url, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ErrInvalidSnapshot
	}

	signer, ok := doc["signer"].(string)
	if !ok || signer == "" {
		return nil, ErrInvalidSnapshot
	}

	rawSignatures, ok := doc["signatures"].([]interface{})
	if !ok {
		return nil, ErrInvalidSnapshot
	}

	snapshot := &domain.SnapshotDocument{Signer: signer}
	if source := stringOrNothing(doc["sourceCollection"]); source != nil {
		snapshot.SourceCollection = domain.CollectionID(*source)
	}
	if target := stringOrNothing(doc["targetCollection"]); target != nil {
		snapshot.TargetCollection = domain.CollectionID(*target)
	}

	// Drop malformed entries, keep the rest
	rejected := 0
	for _, rawEntry := range rawSignatures {
		entry, ok := rawEntry.(map[string]interface{})
		if !ok {
			rejected++
			continue
		}

		data := stringOrNothing(entry["data"])
		signature := stringOrNothing(entry["signature"])
		if data == nil || *data == "" || signature == nil || *signature == "" {
			rejected++
			continue
		}

		snapshot.Signatures = append(snapshot.Signatures, domain.SnapshotSignature{
			Data:      *data,
			Signature: *signature,
		})
	}

	logger.DebugCtx(ctx, "Fetched migration snapshot",
		zap.String("url", url),
		zap.Int("accepted", len(snapshot.Signatures)),
		zap.Int("rejected", rejected),
	)

	return snapshot, nil
}

func stringOrNothing(value interface{}) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}
