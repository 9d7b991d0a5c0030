package reconciler

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/metadata"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
)

// Terminal validation statuses. These are display strings consumed by callers,
// not error values; a failed validation is a normal outcome of a run.
const (
	StatusSnapshotNotFound    = "snapshot reference not found"
	StatusSnapshotFetchFailed = "snapshot fetch failed"
	StatusSnapshotInvalid     = "snapshot document invalid"
	StatusSourceMismatch      = "sourceCollection mismatch"
	StatusTargetMismatch      = "targetCollection mismatch"
	StatusRolesDisabled       = "roles disabled"
	StatusSignerNotAuthorized = "signer not authorized"
)

const metadataFetchConcurrency = 8

// Params keys one reconciliation run
type Params struct {
	SourceCollection domain.CollectionID
	TargetCollection domain.CollectionID
	// Account is the claiming account; presigned records restricted to a
	// different account are filtered out
	Account string
}

// Result is the outcome of one run. Status is empty on success. Items is nil
// exactly when validation failed; a successful run over an exhausted snapshot
// yields an empty, non-nil list.
type Result struct {
	Status string                 `json:"status,omitempty"`
	Items  []domain.ClaimableItem `json:"items"`
}

// Reconciler recomputes the claimable state of a collection pair from fresh
// chain state and the attached snapshot document. Runs are independent; there
// is no cross-run state.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	Reconcile(ctx context.Context, params Params) (*Result, error)
}

type reconciler struct {
	chain   substrate.ChainClient
	reader  collections.Reader
	fetcher metadata.Fetcher
	pool    pond.Pool
}

// NewReconciler creates a snapshot reconciler
func NewReconciler(chain substrate.ChainClient, reader collections.Reader, fetcher metadata.Fetcher) Reconciler {
	return &reconciler{
		chain:   chain,
		reader:  reader,
		fetcher: fetcher,
		pool:    pond.NewPool(metadataFetchConcurrency),
	}
}

func failed(status string) *Result {
	return &Result{Status: status}
}

// Reconcile runs the full pipeline. Validation steps fail fast with a status;
// per-record steps fail soft by dropping or degrading the record. Errors are
// reserved for infrastructure failures (chain connectivity), not validation.
func (r *reconciler) Reconcile(ctx context.Context, params Params) (*Result, error) {
	ref, err := r.locateSnapshot(ctx, params)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return failed(StatusSnapshotNotFound), nil
	}

	doc, err := r.fetcher.FetchSnapshot(ctx, ref.Link, ref.Provider)
	if errors.Is(err, metadata.ErrInvalidSnapshot) {
		return failed(StatusSnapshotInvalid), nil
	}
	if err != nil || doc == nil {
		return failed(StatusSnapshotFetchFailed), nil
	}

	// The document may bind itself to a collection pair; when it does, the
	// binding must agree with the pair being reconciled
	if doc.SourceCollection != "" && doc.SourceCollection != params.SourceCollection {
		return failed(StatusSourceMismatch), nil
	}
	if doc.TargetCollection != "" && doc.TargetCollection != params.TargetCollection {
		return failed(StatusTargetMismatch), nil
	}

	status, err := r.checkAuthority(ctx, params.TargetCollection, doc.Signer)
	if err != nil {
		return nil, err
	}
	if status != "" {
		return failed(status), nil
	}

	items, err := r.decodeAndFilter(ctx, params, doc)
	if err != nil {
		return nil, err
	}

	if err := r.markExpired(ctx, items); err != nil {
		return nil, err
	}
	if err := r.markClaimed(ctx, params.TargetCollection, items); err != nil {
		return nil, err
	}
	r.attachMetadata(ctx, items)

	logger.InfoCtx(ctx, "Reconciled snapshot",
		zap.String("sourceCollection", string(params.SourceCollection)),
		zap.String("targetCollection", string(params.TargetCollection)),
		zap.Int("items", len(items)),
	)

	return &Result{Items: items}, nil
}

// locateSnapshot finds the snapshot reference, preferring the source
// collection's attributes over the target's
func (r *reconciler) locateSnapshot(ctx context.Context, params Params) (*domain.SnapshotRef, error) {
	ref, err := r.reader.SnapshotRef(ctx, domain.PalletUniques, params.SourceCollection)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		return ref, nil
	}
	return r.reader.SnapshotRef(ctx, domain.PalletNfts, params.TargetCollection)
}

// checkAuthority verifies the document signer holds full current control of
// the target collection: both the Admin and the Issuer role. A stale document
// signed by a prior team must not authorize mints. A failed roles read is an
// infrastructure error, not a validation status.
func (r *reconciler) checkAuthority(ctx context.Context, target domain.CollectionID, signer string) (string, error) {
	roles, err := r.reader.Roles(ctx, domain.PalletNfts, target)
	if err != nil {
		return "", err
	}
	if roles == nil || roles.Admin == nil || roles.Issuer == nil {
		return StatusRolesDisabled, nil
	}
	if signer != *roles.Admin || signer != *roles.Issuer {
		return StatusSignerNotAuthorized, nil
	}
	return "", nil
}

// decodeAndFilter decodes each signature entry and drops records this claim
// flow cannot redeem. Undecodable entries are dropped, never fatal. Document
// order is preserved. Acceptance stops at the cap.
func (r *reconciler) decodeAndFilter(ctx context.Context, params Params, doc *domain.SnapshotDocument) ([]domain.ClaimableItem, error) {
	items := make([]domain.ClaimableItem, 0, len(doc.Signatures))
	dropped := 0

	for _, sig := range doc.Signatures {
		if len(items) == domain.MaxClaimableItems {
			break
		}

		presigned, err := r.chain.DecodePreSignedMint(sig.Data)
		if err != nil {
			dropped++
			continue
		}

		if presigned.MintPrice != nil {
			dropped++
			continue
		}
		if presigned.Collection != params.TargetCollection {
			dropped++
			continue
		}
		// Unrestricted records stay claimable by anyone
		if presigned.OnlyAccount != nil && *presigned.OnlyAccount != params.Account {
			dropped++
			continue
		}

		items = append(items, domain.ClaimableItem{
			EncodedNft: sig.Data,
			Signature:  sig.Signature,
			Signer:     doc.Signer,
			PreSigned:  *presigned,
		})
	}

	if dropped > 0 {
		logger.DebugCtx(ctx, "Dropped presigned records",
			zap.String("targetCollection", string(params.TargetCollection)),
			zap.Int("dropped", dropped),
		)
	}

	return items, nil
}

// markExpired flags records whose deadline passed. A deadline equal to the
// current block is still claimable.
func (r *reconciler) markExpired(ctx context.Context, items []domain.ClaimableItem) error {
	if len(items) == 0 {
		return nil
	}

	currentBlock, err := r.chain.BestBlockNumber(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].Expired = items[i].PreSigned.Deadline < currentBlock
	}
	return nil
}

// markClaimed flags records whose target item slot is already occupied
func (r *reconciler) markClaimed(ctx context.Context, target domain.CollectionID, items []domain.ClaimableItem) error {
	if len(items) == 0 {
		return nil
	}

	itemIDs := make([]domain.ItemID, len(items))
	for i := range items {
		itemIDs[i] = items[i].PreSigned.Item
	}

	exists, err := r.chain.ItemsExist(ctx, target, itemIDs)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].Claimed = exists[i]
	}
	return nil
}

// attachMetadata resolves item metadata concurrently, all-settled: one fetch
// failure leaves that record's document unset without touching siblings
func (r *reconciler) attachMetadata(ctx context.Context, items []domain.ClaimableItem) {
	tasks := make([]pond.Task, len(items))
	for i := range items {
		index := i
		tasks[index] = r.pool.SubmitErr(func() error {
			if items[index].PreSigned.Metadata == "" {
				return nil
			}
			parsed, err := r.fetcher.FetchMetadata(ctx, items[index].PreSigned.Metadata)
			if err != nil {
				return err
			}
			items[index].JSON = parsed
			return nil
		})
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			logger.DebugCtx(ctx, "Item metadata fetch failed",
				zap.String("item", string(items[i].PreSigned.Item)),
				zap.Error(err),
			)
		}
	}
}
