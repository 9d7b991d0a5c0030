package messaging

import (
	"context"

	"github.com/assethub-tools/nft-migrator/internal/domain"
)

// Event types published on the migration stream
const (
	EventTypeClaim             = "claim"
	EventTypeCollectionCreated = "collection_created"
	EventTypeTeamChanged       = "team_changed"
	EventTypeSnapshotAttached  = "snapshot_attached"
)

// Publisher defines the interface for publishing migration events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a migration lifecycle event
	PublishEvent(ctx context.Context, event *domain.MigrationEvent) error
	// Close closes the connection
	Close()
}
