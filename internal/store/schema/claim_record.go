package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SubmissionKind names what kind of extrinsic a journal row records
type SubmissionKind string

const (
	// SubmissionKindClaim is a presigned mint redemption
	SubmissionKindClaim SubmissionKind = "claim"
	// SubmissionKindCreateCollection is a collection creation batch
	SubmissionKindCreateCollection SubmissionKind = "create_collection"
	// SubmissionKindSetTeam is a collection team change
	SubmissionKindSetTeam SubmissionKind = "set_team"
	// SubmissionKindAttachSnapshot is a snapshot reference attribute write
	SubmissionKindAttachSnapshot SubmissionKind = "attach_snapshot"
)

// ClaimRecord represents the claim_records table - journal of every extrinsic
// the service submitted on behalf of a migration. Chain state stays canonical;
// the journal exists for audit and display.
type ClaimRecord struct {
	// ID is a service-assigned UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Kind identifies the submission type
	Kind SubmissionKind `gorm:"column:kind;not null;type:text;index"`
	// SourceCollection is the uniques collection id, when the submission
	// belongs to a mapped pair
	SourceCollection string `gorm:"column:source_collection;type:text"`
	// TargetCollection is the nfts collection id
	TargetCollection string `gorm:"column:target_collection;not null;type:text;index"`
	// Item is the item id for claim submissions
	Item string `gorm:"column:item;type:text"`
	// Account is the claiming account for claim submissions
	Account string `gorm:"column:account;type:text;index"`
	// Outcome is the terminal transaction outcome (success, failed, dropped)
	Outcome string `gorm:"column:outcome;not null;type:text"`
	// TxHash is the submitted extrinsic hash
	TxHash string `gorm:"column:tx_hash;type:text"`
	// Meta carries submission context as JSON (e.g. the decoded presigned record)
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
	// CreatedAt is when the terminal outcome was observed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ClaimRecord model
func (ClaimRecord) TableName() string {
	return "claim_records"
}
