package domain

import (
	"strconv"
)

// Pallet identifies which on-chain NFT pallet a collection lives in.
// The two pallets have independent id spaces: a uniques collection and an
// nfts collection with the same id are unrelated.
type Pallet string

const (
	PalletUniques Pallet = "uniques"
	PalletNfts    Pallet = "nfts"
)

// IsValidPallet checks if a pallet name is supported
func IsValidPallet(p Pallet) bool {
	return p == PalletUniques || p == PalletNfts
}

// CollectionID is an opaque collection identifier, serialized as a decimal string
type CollectionID string

// Uint32 parses the id as a u32. Returns false if the id is not a decimal number.
func (c CollectionID) Uint32() (uint32, bool) {
	n, err := strconv.ParseUint(string(c), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Less compares two collection ids numerically
func (c CollectionID) Less(other CollectionID) bool {
	a, okA := c.Uint32()
	b, okB := other.Uint32()
	if okA && okB {
		return a < b
	}
	return string(c) < string(other)
}

// ItemID is an opaque item identifier within a collection, serialized as a decimal string
type ItemID string

// Uint32 parses the id as a u32. Returns false if the id is not a decimal number.
func (i ItemID) Uint32() (uint32, bool) {
	n, err := strconv.ParseUint(string(i), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// CollectionRecord is an immutable snapshot of a collection's chain state at
// query time. Chain state may advance after the query; callers tolerate staleness.
type CollectionRecord struct {
	ID               CollectionID    `json:"id"`
	Owner            string          `json:"owner"`
	MetadataLink     string          `json:"metadataLink"`
	MetadataLocked   bool            `json:"metadataLocked"`
	AttributesLocked bool            `json:"attributesLocked"`
	ItemCount        uint32          `json:"items"`
	IsMapped         bool            `json:"isMapped,omitempty"`
	JSON             *ParsedMetadata `json:"json,omitempty"`
}

// ParsedMetadata holds normalized collection/item metadata fetched from a
// content gateway. Nil fields are semantically "unset", not an error.
type ParsedMetadata struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	// Image is reduced to its bare content hash
	Image *string `json:"image,omitempty"`
	// ImageURL is the image resolved against the images gateway, ready for display
	ImageURL *string `json:"imageUrl,omitempty"`
}

// MappedCollection pairs a source (uniques) collection with a target (nfts)
// collection owned by the same account and carrying a byte-identical metadata link.
type MappedCollection struct {
	SourceCollection CollectionID    `json:"sourceCollection"`
	TargetCollection CollectionID    `json:"targetCollection"`
	Owner            string          `json:"owner"`
	MetadataLink     string          `json:"metadataLink"`
	JSON             *ParsedMetadata `json:"json,omitempty"`
}

// CollectionRoles holds the privileged accounts of a collection.
// A nil role is disabled; disabling is irreversible on-chain.
type CollectionRoles struct {
	Admin   *string `json:"admin,omitempty"`
	Issuer  *string `json:"issuer,omitempty"`
	Freezer *string `json:"freezer,omitempty"`
}

// CollectionAttribute is a key/value entry from a collection's attribute namespace
type CollectionAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SnapshotRef points at a migration snapshot document, optionally through an
// alternate gateway base
type SnapshotRef struct {
	Link     string `json:"link,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// SnapshotSignature is one presigned mint authorization inside a snapshot document
type SnapshotSignature struct {
	// Data is the SCALE-encoded PreSignedMint, hex-encoded
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

// SnapshotDocument is the externally authored migration snapshot fetched from
// a content gateway. SourceCollection and TargetCollection may be empty: the
// document is allowed to omit them.
type SnapshotDocument struct {
	Signer           string              `json:"signer"`
	SourceCollection CollectionID        `json:"sourceCollection,omitempty"`
	TargetCollection CollectionID        `json:"targetCollection,omitempty"`
	Signatures       []SnapshotSignature `json:"signatures"`
}

// PreSignedMint is a decoded presigned mint authorization
type PreSignedMint struct {
	Collection CollectionID          `json:"collection"`
	Item       ItemID                `json:"item"`
	Attributes []CollectionAttribute `json:"attributes,omitempty"`
	// Metadata is the content id of the item metadata document
	Metadata string `json:"metadata"`
	// OnlyAccount restricts redemption to one account when set
	OnlyAccount *string `json:"onlyAccount,omitempty"`
	Deadline    uint32  `json:"deadline"`
	// MintPrice, when set, makes the authorization a paid mint (decimal planck amount)
	MintPrice *string `json:"mintPrice,omitempty"`
}

// ClaimableItem is one reconstructed claim candidate. Expired and Claimed are
// computed per reconciliation run and are not authoritative until a claim
// transaction confirms.
type ClaimableItem struct {
	EncodedNft string          `json:"encodedNft"`
	Signature  string          `json:"signature"`
	Signer     string          `json:"signer"`
	PreSigned  PreSignedMint   `json:"presigned"`
	Expired    bool            `json:"expired"`
	Claimed    bool            `json:"claimed"`
	JSON       *ParsedMetadata `json:"json,omitempty"`
}

// MintType names the public minting policy of an nfts collection
type MintType string

const (
	MintTypeIssuer   MintType = "issuer"
	MintTypePublic   MintType = "public"
	MintTypeHolderOf MintType = "holderOf"
)

// MintSettings configures minting for an nfts collection
type MintSettings struct {
	MintType MintType `json:"mintType"`
	// HolderOfCollection is only set for the holderOf mint type
	HolderOfCollection  *CollectionID `json:"holderOfCollection,omitempty"`
	Price               *string       `json:"price,omitempty"`
	StartBlock          *uint32       `json:"startBlock,omitempty"`
	EndBlock            *uint32       `json:"endBlock,omitempty"`
	DefaultItemSettings uint64        `json:"defaultItemSettings"`
}

// CollectionConfig mirrors the nfts pallet collection configuration record.
// Settings is a bitmask with inverted polarity: a set bit means locked.
type CollectionConfig struct {
	Settings     uint64       `json:"settings"`
	MaxSupply    *uint32      `json:"maxSupply,omitempty"`
	MintSettings MintSettings `json:"mintSettings"`
}

// TxOutcome is the terminal result of one submitted extrinsic (or batch)
type TxOutcome string

const (
	TxOutcomeSuccess TxOutcome = "success"
	TxOutcomeFailed  TxOutcome = "failed"
	TxOutcomeDropped TxOutcome = "dropped"
)

// MigrationEvent is published to the message stream on claim lifecycle transitions
type MigrationEvent struct {
	Type             string       `json:"type"`
	SourceCollection CollectionID `json:"sourceCollection,omitempty"`
	TargetCollection CollectionID `json:"targetCollection"`
	Item             ItemID       `json:"item,omitempty"`
	Account          string       `json:"account,omitempty"`
	Outcome          TxOutcome    `json:"outcome,omitempty"`
	TxHash           string       `json:"txHash,omitempty"`
}
