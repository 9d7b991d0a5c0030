package migration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/assethub-tools/nft-migrator/internal/adapter"
	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
	"github.com/assethub-tools/nft-migrator/internal/messaging"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
	"github.com/assethub-tools/nft-migrator/internal/reconciler"
	"github.com/assethub-tools/nft-migrator/internal/store"
	"github.com/assethub-tools/nft-migrator/internal/store/schema"
)

// ClaimOutcome is the terminal result of one claim submission
type ClaimOutcome struct {
	Item    domain.ItemID    `json:"item"`
	Outcome domain.TxOutcome `json:"outcome"`
	TxHash  string           `json:"txHash,omitempty"`
}

// ClaimRunResult is the outcome of one claim execution request. A non-empty
// Status means reconciliation failed validation and nothing was submitted.
type ClaimRunResult struct {
	Status   string         `json:"status,omitempty"`
	Outcomes []ClaimOutcome `json:"outcomes"`
}

// Orchestrator executes migration actions with the service signer. Every
// submission is attempted exactly once; re-claiming after a failure requires a
// fresh request, which re-runs reconciliation against current chain state.
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// ExecuteClaims reconciles the pair and submits a claim for every item
	// still claimable (or only the given item, when set)
	ExecuteClaims(ctx context.Context, params reconciler.Params, item *domain.ItemID) (*ClaimRunResult, error)

	// CreateCollection creates a new nfts collection owned by the service signer
	CreateCollection(ctx context.Context, params substrate.CreateCollectionParams) (domain.CollectionID, *substrate.SubmissionResult, error)

	// SetTeam replaces the team of a signer-owned nfts collection
	SetTeam(ctx context.Context, id domain.CollectionID, roles domain.CollectionRoles) (*substrate.SubmissionResult, error)

	// AttachSnapshot writes the snapshot reference attributes on a
	// signer-owned collection
	AttachSnapshot(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, ref domain.SnapshotRef) (*substrate.SubmissionResult, error)
}

type orchestrator struct {
	reconciler reconciler.Reconciler
	reader     collections.Reader
	submitter  substrate.Submitter
	store      store.Store
	publisher  messaging.Publisher
	json       adapter.JSON
}

// NewOrchestrator creates a migration orchestrator. submitter may be nil when
// the service runs without a signer key; submitting actions then fail with
// domain.ErrChainNotReady.
func NewOrchestrator(
	rec reconciler.Reconciler,
	reader collections.Reader,
	submitter substrate.Submitter,
	st store.Store,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
) Orchestrator {
	return &orchestrator{
		reconciler: rec,
		reader:     reader,
		submitter:  submitter,
		store:      st,
		publisher:  publisher,
		json:       jsonAdapter,
	}
}

func (o *orchestrator) ExecuteClaims(ctx context.Context, params reconciler.Params, item *domain.ItemID) (*ClaimRunResult, error) {
	if o.submitter == nil {
		return nil, domain.ErrChainNotReady
	}

	result, err := o.reconciler.Reconcile(ctx, params)
	if err != nil {
		return nil, err
	}
	if result.Status != "" {
		return &ClaimRunResult{Status: result.Status}, nil
	}

	run := &ClaimRunResult{Outcomes: []ClaimOutcome{}}
	for _, candidate := range result.Items {
		if candidate.Expired || candidate.Claimed {
			continue
		}
		if item != nil && candidate.PreSigned.Item != *item {
			continue
		}

		submission, err := o.submitter.SubmitClaim(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to submit claim for item %s: %w", candidate.PreSigned.Item, err)
		}

		outcome := ClaimOutcome{
			Item:    candidate.PreSigned.Item,
			Outcome: submission.Outcome,
			TxHash:  submission.TxHash,
		}
		run.Outcomes = append(run.Outcomes, outcome)

		o.journalClaim(ctx, params, candidate, submission)
		o.publish(ctx, &domain.MigrationEvent{
			Type:             messaging.EventTypeClaim,
			SourceCollection: params.SourceCollection,
			TargetCollection: params.TargetCollection,
			Item:             candidate.PreSigned.Item,
			Account:          params.Account,
			Outcome:          submission.Outcome,
			TxHash:           submission.TxHash,
		})
	}

	logger.InfoCtx(ctx, "Executed claims",
		zap.String("sourceCollection", string(params.SourceCollection)),
		zap.String("targetCollection", string(params.TargetCollection)),
		zap.Int("submitted", len(run.Outcomes)),
	)

	return run, nil
}

func (o *orchestrator) CreateCollection(ctx context.Context, params substrate.CreateCollectionParams) (domain.CollectionID, *substrate.SubmissionResult, error) {
	if o.submitter == nil {
		return "", nil, domain.ErrChainNotReady
	}

	id, submission, err := o.submitter.CreateCollection(ctx, params)
	if err != nil {
		return "", nil, err
	}

	o.journal(ctx, &schema.ClaimRecord{
		Kind:             schema.SubmissionKindCreateCollection,
		TargetCollection: string(id),
		Outcome:          string(submission.Outcome),
		TxHash:           submission.TxHash,
	})
	o.publish(ctx, &domain.MigrationEvent{
		Type:             messaging.EventTypeCollectionCreated,
		TargetCollection: id,
		Outcome:          submission.Outcome,
		TxHash:           submission.TxHash,
	})

	return id, submission, nil
}

func (o *orchestrator) SetTeam(ctx context.Context, id domain.CollectionID, roles domain.CollectionRoles) (*substrate.SubmissionResult, error) {
	if o.submitter == nil {
		return nil, domain.ErrChainNotReady
	}

	if err := o.reader.ValidateOwned(ctx, domain.PalletNfts, id, o.submitter.Address()); err != nil {
		return nil, err
	}

	submission, err := o.submitter.SetTeam(ctx, id, roles)
	if err != nil {
		return nil, err
	}

	o.journal(ctx, &schema.ClaimRecord{
		Kind:             schema.SubmissionKindSetTeam,
		TargetCollection: string(id),
		Outcome:          string(submission.Outcome),
		TxHash:           submission.TxHash,
	})
	o.publish(ctx, &domain.MigrationEvent{
		Type:             messaging.EventTypeTeamChanged,
		TargetCollection: id,
		Outcome:          submission.Outcome,
		TxHash:           submission.TxHash,
	})

	return submission, nil
}

func (o *orchestrator) AttachSnapshot(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, ref domain.SnapshotRef) (*substrate.SubmissionResult, error) {
	if o.submitter == nil {
		return nil, domain.ErrChainNotReady
	}

	if err := o.reader.ValidateOwned(ctx, pallet, id, o.submitter.Address()); err != nil {
		return nil, err
	}

	// The nfts attribute write may need a temporary admin swap; pass the
	// current team along so it can be restored
	var roles *domain.CollectionRoles
	if pallet == domain.PalletNfts {
		var err error
		roles, err = o.reader.Roles(ctx, pallet, id)
		if err != nil {
			return nil, err
		}
	}

	submission, err := o.submitter.AttachSnapshot(ctx, pallet, id, ref, roles)
	if err != nil {
		return nil, err
	}

	o.journal(ctx, &schema.ClaimRecord{
		Kind:             schema.SubmissionKindAttachSnapshot,
		TargetCollection: string(id),
		Outcome:          string(submission.Outcome),
		TxHash:           submission.TxHash,
	})
	o.publish(ctx, &domain.MigrationEvent{
		Type:             messaging.EventTypeSnapshotAttached,
		TargetCollection: id,
		Outcome:          submission.Outcome,
		TxHash:           submission.TxHash,
	})

	return submission, nil
}

// journalClaim records one claim submission with the decoded presigned record
// as context
func (o *orchestrator) journalClaim(ctx context.Context, params reconciler.Params, item domain.ClaimableItem, submission *substrate.SubmissionResult) {
	record := &schema.ClaimRecord{
		Kind:             schema.SubmissionKindClaim,
		SourceCollection: string(params.SourceCollection),
		TargetCollection: string(params.TargetCollection),
		Item:             string(item.PreSigned.Item),
		Account:          params.Account,
		Outcome:          string(submission.Outcome),
		TxHash:           submission.TxHash,
	}
	if meta, err := o.json.Marshal(item.PreSigned); err == nil {
		record.Meta = datatypes.JSON(meta)
	}
	o.journal(ctx, record)
}

// journal writes a record best-effort: a journal failure must not mask the
// already-final chain outcome
func (o *orchestrator) journal(ctx context.Context, record *schema.ClaimRecord) {
	if o.store == nil {
		return
	}
	record.ID = uuid.NewString()
	if err := o.store.CreateClaimRecord(ctx, record); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("targetCollection", record.TargetCollection))
	}
}

// publish emits an event best-effort
func (o *orchestrator) publish(ctx context.Context, event *domain.MigrationEvent) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("eventType", event.Type))
	}
}
