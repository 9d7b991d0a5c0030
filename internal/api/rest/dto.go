package rest

import (
	"github.com/assethub-tools/nft-migrator/internal/domain"
)

// ReconcileRequest asks for a reconciliation run over one collection pair
type ReconcileRequest struct {
	SourceCollection string `json:"sourceCollection" binding:"required"`
	TargetCollection string `json:"targetCollection" binding:"required"`
	// Account filters presigned records restricted to a specific claimant
	Account string `json:"account"`
}

// ClaimRequest asks the service signer to redeem claimable items of a pair
type ClaimRequest struct {
	SourceCollection string `json:"sourceCollection" binding:"required"`
	TargetCollection string `json:"targetCollection" binding:"required"`
	Account          string `json:"account"`
	// Item, when set, restricts the run to a single item
	Item *string `json:"item"`
}

// CreateCollectionRequest describes a new nfts collection. Lock flags default
// to false, which leaves the corresponding capability locked from the start.
type CreateCollectionRequest struct {
	Metadata  string  `json:"metadata"`
	MaxSupply *uint32 `json:"maxSupply"`
	// MintType is one of issuer, public, holderOf
	MintType           string  `json:"mintType"`
	HolderOfCollection *string `json:"holderOfCollection"`
	Price              *string `json:"price"`
	StartBlock         *uint32 `json:"startBlock"`
	EndBlock           *uint32 `json:"endBlock"`

	// Collection settings, in pallet bit order
	TransferableItems  bool `json:"transferableItems"`
	UnlockedMetadata   bool `json:"unlockedMetadata"`
	UnlockedAttributes bool `json:"unlockedAttributes"`
	UnlockedMaxSupply  bool `json:"unlockedMaxSupply"`
	DepositRequired    bool `json:"depositRequired"`

	// Default item settings, in pallet bit order
	ItemsTransferable       bool `json:"itemsTransferable"`
	ItemsUnlockedMetadata   bool `json:"itemsUnlockedMetadata"`
	ItemsUnlockedAttributes bool `json:"itemsUnlockedAttributes"`
}

// SetTeamRequest replaces the privileged accounts of a collection.
// Omitted roles are disabled, irreversibly.
type SetTeamRequest struct {
	Admin   *string `json:"admin"`
	Issuer  *string `json:"issuer"`
	Freezer *string `json:"freezer"`
}

// AttachSnapshotRequest writes the snapshot reference of a collection.
// An empty link clears it.
type AttachSnapshotRequest struct {
	Link     string `json:"link"`
	Provider string `json:"provider"`
}

// CreateCollectionResponse reports the id and outcome of a creation
type CreateCollectionResponse struct {
	Collection domain.CollectionID `json:"collection"`
	Outcome    domain.TxOutcome    `json:"outcome"`
	TxHash     string              `json:"txHash,omitempty"`
}

// SubmissionResponse reports the outcome of one submitted extrinsic
type SubmissionResponse struct {
	Outcome domain.TxOutcome `json:"outcome"`
	TxHash  string           `json:"txHash,omitempty"`
}
