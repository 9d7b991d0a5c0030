package store

import (
	"context"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateClaimRecord journals one submitted extrinsic outcome
	CreateClaimRecord(ctx context.Context, record *schema.ClaimRecord) error
	// ListClaimRecords retrieves journal rows for a target collection,
	// newest first
	ListClaimRecords(ctx context.Context, target domain.CollectionID, limit, offset int) ([]schema.ClaimRecord, error)
	// ListClaimRecordsByAccount retrieves journal rows for a claiming
	// account, newest first
	ListClaimRecordsByAccount(ctx context.Context, account string, limit, offset int) ([]schema.ClaimRecord, error)
}
