package substrate

import (
	"context"
	"fmt"
	"math/big"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	subkey "github.com/vedhavyas/go-subkey/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/logger"
)

// Role bits of the nfts pallet CollectionRole bitmask
const (
	roleBitIssuer  = 1 << 0
	roleBitFreezer = 1 << 1
	roleBitAdmin   = 1 << 2
)

// SubmissionResult is the terminal result of one submitted extrinsic
type SubmissionResult struct {
	Outcome domain.TxOutcome
	TxHash  string
}

// CreateCollectionParams describes a collection to create in the nfts pallet.
// The service signer becomes owner and admin.
type CreateCollectionParams struct {
	// Metadata is the collection metadata link, set in the same batch when
	// non-empty
	Metadata string
	Config   domain.CollectionConfig
}

// Submitter signs and submits extrinsics with the service signer key. Each
// submission is watched until it reaches a block, then its effect is verified
// with a state read, so callers always get exactly one terminal outcome.
//
//go:generate mockgen -source=submitter.go -destination=../../mocks/submitter.go -package=mocks -mock_names=Submitter=MockSubmitter
type Submitter interface {
	// Address returns the SS58 address of the service signer
	Address() string

	// SubmitClaim redeems one presigned mint authorization. The outcome is
	// verified by reading the minted item's storage entry.
	SubmitClaim(ctx context.Context, item domain.ClaimableItem) (*SubmissionResult, error)

	// CreateCollection creates an nfts collection and returns its assigned id
	CreateCollection(ctx context.Context, params CreateCollectionParams) (domain.CollectionID, *SubmissionResult, error)

	// SetTeam replaces the privileged accounts of an nfts collection.
	// Nil roles are disabled, which the chain makes irreversible.
	SetTeam(ctx context.Context, id domain.CollectionID, roles domain.CollectionRoles) (*SubmissionResult, error)

	// AttachSnapshot writes (or, with an empty link, clears) the snapshot
	// reference attributes of a collection. currentRoles lets the call
	// temporarily assume the admin role on nfts collections whose admin is
	// not the signer, restoring the previous team afterwards.
	AttachSnapshot(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, ref domain.SnapshotRef, currentRoles *domain.CollectionRoles) (*SubmissionResult, error)
}

type submitter struct {
	api        *gsrpc.SubstrateAPI
	meta       *types.Metadata
	keyring    signature.KeyringPair
	ss58Prefix uint16
}

// NewSubmitter connects to the chain node and derives the signer key from the
// configured secret seed
func NewSubmitter(cfg *Config, seed string) (Submitter, error) {
	keyring, err := signature.KeyringPairFromSecret(seed, cfg.SS58Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signer key: %w", err)
	}

	api, err := gsrpc.NewSubstrateAPI(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node: %w", err)
	}

	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runtime metadata: %w", err)
	}

	return &submitter{
		api:        api,
		meta:       meta,
		keyring:    keyring,
		ss58Prefix: cfg.SS58Prefix,
	}, nil
}

func (s *submitter) Address() string {
	return subkey.SS58Encode(s.keyring.PublicKey, s.ss58Prefix)
}

// optionAddress encodes an Option<MultiAddress> call argument
type optionAddress struct {
	address *types.MultiAddress
}

func (o optionAddress) Encode(encoder scale.Encoder) error {
	if o.address == nil {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encoder.Encode(*o.address)
}

func multiAddress(account types.AccountID) types.MultiAddress {
	return types.MultiAddress{IsID: true, AsID: account}
}

func addressOption(address *string) (optionAddress, error) {
	if address == nil {
		return optionAddress{}, nil
	}
	_, pubkey, err := subkey.SS58Decode(*address)
	if err != nil {
		return optionAddress{}, fmt.Errorf("failed to decode address %q: %w", *address, err)
	}
	var account types.AccountID
	copy(account[:], pubkey)
	addr := multiAddress(account)
	return optionAddress{address: &addr}, nil
}

// nonce reads the signer's next account nonce
func (s *submitter) nonce() (uint64, error) {
	key, err := types.CreateStorageKey(s.meta, "System", "Account", s.keyring.PublicKey)
	if err != nil {
		return 0, fmt.Errorf("failed to build account storage key: %w", err)
	}

	var info types.AccountInfo
	if _, err := s.api.RPC.State.GetStorageLatest(key, &info); err != nil {
		return 0, fmt.Errorf("failed to fetch account nonce: %w", err)
	}

	return uint64(info.Nonce), nil
}

// signAndSubmit signs the call and watches it until a terminal transaction
// status. An in-block status only proves inclusion; callers verify the actual
// effect with a state read.
func (s *submitter) signAndSubmit(ctx context.Context, call types.Call) (string, bool, error) {
	ext := types.NewExtrinsic(call)

	genesisHash, err := s.api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch genesis hash: %w", err)
	}

	rv, err := s.api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch runtime version: %w", err)
	}

	nonce, err := s.nonce()
	if err != nil {
		return "", false, err
	}

	opts := types.SignatureOptions{
		BlockHash:          genesisHash,
		Era:                types.ExtrinsicEra{IsImmortalEra: true},
		GenesisHash:        genesisHash,
		Nonce:              types.NewUCompactFromUInt(nonce),
		SpecVersion:        rv.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: rv.TransactionVersion,
	}

	if err := ext.Sign(s.keyring, opts); err != nil {
		return "", false, fmt.Errorf("failed to sign extrinsic: %w", err)
	}

	encoded, err := codec.Encode(ext)
	if err != nil {
		return "", false, fmt.Errorf("failed to encode extrinsic: %w", err)
	}
	hash := blake2b.Sum256(encoded)
	txHash := codec.HexEncodeToString(hash[:])

	sub, err := s.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return txHash, false, fmt.Errorf("failed to submit extrinsic: %w", err)
	}
	defer sub.Unsubscribe()

	logger.InfoCtx(ctx, "Submitted extrinsic", zap.String("txHash", txHash))

	for {
		select {
		case <-ctx.Done():
			return txHash, false, ctx.Err()
		case err := <-sub.Err():
			return txHash, false, fmt.Errorf("extrinsic watch failed: %w", err)
		case status := <-sub.Chan():
			switch {
			case status.IsInBlock:
				return txHash, true, nil
			case status.IsFinalized:
				return txHash, true, nil
			case status.IsDropped, status.IsInvalid, status.IsUsurped:
				return txHash, false, nil
			}
		}
	}
}

// storageExists checks occupancy of a raw storage key
func (s *submitter) storageExists(key types.StorageKey) (bool, error) {
	raw, err := s.api.RPC.State.GetStorageRawLatest(key)
	if err != nil {
		return false, fmt.Errorf("failed to read storage: %w", err)
	}
	return raw != nil && len(*raw) > 0, nil
}

func (s *submitter) SubmitClaim(ctx context.Context, item domain.ClaimableItem) (*SubmissionResult, error) {
	data, err := hexDecode(item.EncodedNft)
	if err != nil {
		return nil, fmt.Errorf("failed to decode presigned data: %w", err)
	}

	sig, err := hexDecode(item.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}
	var wireSig sr25519Signature
	if len(sig) != len(wireSig.Signature) {
		return nil, fmt.Errorf("unexpected signature length %d", len(sig))
	}
	copy(wireSig.Signature[:], sig)

	_, signerKey, err := subkey.SS58Decode(item.Signer)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signer address: %w", err)
	}
	var signer types.AccountID
	copy(signer[:], signerKey)

	// The presigned bytes pass through verbatim; re-encoding could disturb
	// the payload the signature covers
	call, err := types.NewCall(s.meta, "Nfts.mint_pre_signed", rawEncoded(data), wireSig, signer)
	if err != nil {
		return nil, fmt.Errorf("failed to build claim call: %w", err)
	}

	txHash, inBlock, err := s.signAndSubmit(ctx, call)
	if err != nil {
		return nil, err
	}
	if !inBlock {
		return &SubmissionResult{Outcome: domain.TxOutcomeDropped, TxHash: txHash}, nil
	}

	collection, ok := item.PreSigned.Collection.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", item.PreSigned.Collection)
	}
	itemNumber, ok := item.PreSigned.Item.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid item id %q", item.PreSigned.Item)
	}

	key, err := mapKey(palletNfts, storageItem, types.NewU32(collection), types.NewU32(itemNumber))
	if err != nil {
		return nil, err
	}
	minted, err := s.storageExists(key)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Outcome: domain.TxOutcomeFailed, TxHash: txHash}
	if minted {
		result.Outcome = domain.TxOutcomeSuccess
	}
	return result, nil
}

// configFromDomain converts a collection configuration to its wire form
func configFromDomain(cfg domain.CollectionConfig) (collectionConfig, error) {
	wire := collectionConfig{
		Settings: types.NewU64(cfg.Settings),
		MintSettings: mintSettings{
			DefaultItemSettings: types.NewU64(cfg.MintSettings.DefaultItemSettings),
		},
	}

	if cfg.MaxSupply != nil {
		wire.HasMaxSupply = true
		wire.MaxSupply = types.NewU32(*cfg.MaxSupply)
	}

	switch cfg.MintSettings.MintType {
	case domain.MintTypePublic:
		wire.MintSettings.MintType = mintTypePublic
	case domain.MintTypeHolderOf:
		wire.MintSettings.MintType = mintTypeHolderOf
		if cfg.MintSettings.HolderOfCollection == nil {
			return wire, fmt.Errorf("holderOf mint type requires a holder collection")
		}
		holder, ok := cfg.MintSettings.HolderOfCollection.Uint32()
		if !ok {
			return wire, fmt.Errorf("invalid holder collection id %q", *cfg.MintSettings.HolderOfCollection)
		}
		wire.MintSettings.HolderOf = types.NewU32(holder)
	default:
		wire.MintSettings.MintType = mintTypeIssuer
	}

	if cfg.MintSettings.Price != nil {
		price, ok := new(big.Int).SetString(*cfg.MintSettings.Price, 10)
		if !ok {
			return wire, fmt.Errorf("invalid mint price %q", *cfg.MintSettings.Price)
		}
		wire.MintSettings.HasPrice = true
		wire.MintSettings.Price = types.NewU128(*price)
	}
	if cfg.MintSettings.StartBlock != nil {
		wire.MintSettings.HasStartBlock = true
		wire.MintSettings.StartBlock = types.NewU32(*cfg.MintSettings.StartBlock)
	}
	if cfg.MintSettings.EndBlock != nil {
		wire.MintSettings.HasEndBlock = true
		wire.MintSettings.EndBlock = types.NewU32(*cfg.MintSettings.EndBlock)
	}

	return wire, nil
}

func (s *submitter) CreateCollection(ctx context.Context, params CreateCollectionParams) (domain.CollectionID, *SubmissionResult, error) {
	// The id the chain will assign; read before submitting so the created
	// collection can be located afterwards
	nextIDKey := types.StorageKey(storagePrefix(palletNfts, storageNextCollectionID))
	var nextID types.U32
	found, err := s.api.RPC.State.GetStorageLatest(nextIDKey, &nextID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read next collection id: %w", err)
	}
	if !found {
		nextID = 0
	}

	config, err := configFromDomain(params.Config)
	if err != nil {
		return "", nil, err
	}

	var admin types.AccountID
	copy(admin[:], s.keyring.PublicKey)

	createCall, err := types.NewCall(s.meta, "Nfts.create", multiAddress(admin), config)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build create call: %w", err)
	}

	calls := []types.Call{createCall}
	if params.Metadata != "" {
		metadataCall, err := types.NewCall(s.meta, "Nfts.set_collection_metadata", nextID, types.Bytes(params.Metadata))
		if err != nil {
			return "", nil, fmt.Errorf("failed to build metadata call: %w", err)
		}
		calls = append(calls, metadataCall)
	}

	call := calls[0]
	if len(calls) > 1 {
		call, err = types.NewCall(s.meta, "Utility.batch_all", calls)
		if err != nil {
			return "", nil, fmt.Errorf("failed to build batch call: %w", err)
		}
	}

	txHash, inBlock, err := s.signAndSubmit(ctx, call)
	if err != nil {
		return "", nil, err
	}
	if !inBlock {
		return "", &SubmissionResult{Outcome: domain.TxOutcomeDropped, TxHash: txHash}, nil
	}

	id := domain.CollectionID(fmt.Sprintf("%d", nextID))
	collectionKey, err := mapKey(palletNfts, storageCollection, nextID)
	if err != nil {
		return "", nil, err
	}
	created, err := s.storageExists(collectionKey)
	if err != nil {
		return "", nil, err
	}
	if !created {
		return "", &SubmissionResult{Outcome: domain.TxOutcomeFailed, TxHash: txHash}, nil
	}

	logger.InfoCtx(ctx, "Created collection",
		zap.String("collection", string(id)),
		zap.String("txHash", txHash),
	)

	return id, &SubmissionResult{Outcome: domain.TxOutcomeSuccess, TxHash: txHash}, nil
}

func (s *submitter) setTeamCall(collection types.U32, roles domain.CollectionRoles) (types.Call, error) {
	issuer, err := addressOption(roles.Issuer)
	if err != nil {
		return types.Call{}, err
	}
	admin, err := addressOption(roles.Admin)
	if err != nil {
		return types.Call{}, err
	}
	freezer, err := addressOption(roles.Freezer)
	if err != nil {
		return types.Call{}, err
	}

	call, err := types.NewCall(s.meta, "Nfts.set_team", collection, issuer, admin, freezer)
	if err != nil {
		return types.Call{}, fmt.Errorf("failed to build set_team call: %w", err)
	}
	return call, nil
}

// roleHolder picks one (account, role bit) pair to verify a team change against
func roleHolder(roles domain.CollectionRoles) (string, uint8) {
	if roles.Admin != nil {
		return *roles.Admin, roleBitAdmin
	}
	if roles.Issuer != nil {
		return *roles.Issuer, roleBitIssuer
	}
	if roles.Freezer != nil {
		return *roles.Freezer, roleBitFreezer
	}
	return "", 0
}

func (s *submitter) verifyRole(collection types.U32, address string, bit uint8) (bool, error) {
	_, pubkey, err := subkey.SS58Decode(address)
	if err != nil {
		return false, fmt.Errorf("failed to decode address %q: %w", address, err)
	}
	var account types.AccountID
	copy(account[:], pubkey)

	key, err := mapKey(palletNfts, storageCollectionRoleOf, collection, account)
	if err != nil {
		return false, err
	}

	var mask types.U8
	found, err := s.api.RPC.State.GetStorageLatest(key, &mask)
	if err != nil {
		return false, fmt.Errorf("failed to read role entry: %w", err)
	}

	return found && uint8(mask)&bit != 0, nil
}

func (s *submitter) SetTeam(ctx context.Context, id domain.CollectionID, roles domain.CollectionRoles) (*SubmissionResult, error) {
	collection, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	call, err := s.setTeamCall(types.NewU32(collection), roles)
	if err != nil {
		return nil, err
	}

	txHash, inBlock, err := s.signAndSubmit(ctx, call)
	if err != nil {
		return nil, err
	}
	if !inBlock {
		return &SubmissionResult{Outcome: domain.TxOutcomeDropped, TxHash: txHash}, nil
	}

	result := &SubmissionResult{Outcome: domain.TxOutcomeSuccess, TxHash: txHash}
	if account, bit := roleHolder(roles); account != "" {
		held, err := s.verifyRole(types.NewU32(collection), account, bit)
		if err != nil {
			return nil, err
		}
		if !held {
			result.Outcome = domain.TxOutcomeFailed
		}
	}
	return result, nil
}

// snapshotAttributeCalls builds the set/clear calls for the snapshot reference
// attributes of one collection
func (s *submitter) snapshotAttributeCalls(pallet domain.Pallet, collection types.U32, ref domain.SnapshotRef) ([]types.Call, error) {
	entries := []struct {
		key   string
		value string
	}{
		{domain.AttributeKeySnapshot, ref.Link},
		{domain.AttributeKeyProvider, ref.Provider},
	}

	var calls []types.Call
	for _, entry := range entries {
		var call types.Call
		var err error

		switch {
		case pallet == domain.PalletUniques && entry.value != "":
			call, err = types.NewCall(s.meta, "Uniques.set_attribute", collection, optionNone{}, types.Bytes(entry.key), types.Bytes(entry.value))
		case pallet == domain.PalletUniques:
			call, err = types.NewCall(s.meta, "Uniques.clear_attribute", collection, optionNone{}, types.Bytes(entry.key))
		case entry.value != "":
			call, err = types.NewCall(s.meta, "Nfts.set_attribute", collection, optionNone{}, attributeNamespaceCollectionOwner{}, types.Bytes(entry.key), types.Bytes(entry.value))
		default:
			call, err = types.NewCall(s.meta, "Nfts.clear_attribute", collection, optionNone{}, attributeNamespaceCollectionOwner{}, types.Bytes(entry.key))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to build attribute call: %w", err)
		}

		calls = append(calls, call)
	}

	return calls, nil
}

func (s *submitter) AttachSnapshot(ctx context.Context, pallet domain.Pallet, id domain.CollectionID, ref domain.SnapshotRef, currentRoles *domain.CollectionRoles) (*SubmissionResult, error) {
	collection, ok := id.Uint32()
	if !ok {
		return nil, fmt.Errorf("invalid collection id %q", id)
	}

	calls, err := s.snapshotAttributeCalls(pallet, types.NewU32(collection), ref)
	if err != nil {
		return nil, err
	}

	// Attribute writes in the nfts CollectionOwner namespace need the admin
	// role. When the admin is someone else, assume it for the duration of the
	// batch and hand the previous team back at the end. batch_all keeps the
	// swap atomic.
	if pallet == domain.PalletNfts && currentRoles != nil {
		signerAddress := s.Address()
		if currentRoles.Admin == nil || *currentRoles.Admin != signerAddress {
			assumed := domain.CollectionRoles{
				Admin:   &signerAddress,
				Issuer:  currentRoles.Issuer,
				Freezer: currentRoles.Freezer,
			}
			assumeCall, err := s.setTeamCall(types.NewU32(collection), assumed)
			if err != nil {
				return nil, err
			}
			restoreCall, err := s.setTeamCall(types.NewU32(collection), *currentRoles)
			if err != nil {
				return nil, err
			}
			calls = append([]types.Call{assumeCall}, append(calls, restoreCall)...)
		}
	}

	call, err := types.NewCall(s.meta, "Utility.batch_all", calls)
	if err != nil {
		return nil, fmt.Errorf("failed to build batch call: %w", err)
	}

	txHash, inBlock, err := s.signAndSubmit(ctx, call)
	if err != nil {
		return nil, err
	}
	if !inBlock {
		return &SubmissionResult{Outcome: domain.TxOutcomeDropped, TxHash: txHash}, nil
	}

	attached, err := s.verifySnapshotAttribute(pallet, types.NewU32(collection), ref.Link)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Outcome: domain.TxOutcomeFailed, TxHash: txHash}
	if attached {
		result.Outcome = domain.TxOutcomeSuccess
	}
	return result, nil
}

// verifySnapshotAttribute reads the SNAPSHOT attribute back and compares it to
// the expected link (absence, when clearing)
func (s *submitter) verifySnapshotAttribute(pallet domain.Pallet, collection types.U32, link string) (bool, error) {
	var key types.StorageKey
	var err error
	if pallet == domain.PalletUniques {
		key, err = mapKey(palletUniques, storageAttribute, collection, optionNone{}, types.Bytes(domain.AttributeKeySnapshot))
	} else {
		key, err = mapKey(palletNfts, storageAttribute, collection, optionNone{}, attributeNamespaceCollectionOwner{}, types.Bytes(domain.AttributeKeySnapshot))
	}
	if err != nil {
		return false, err
	}

	var value attributeValue
	found, err := s.api.RPC.State.GetStorageLatest(key, &value)
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot attribute: %w", err)
	}

	if link == "" {
		return !found, nil
	}
	return found && string(value.Data) == link, nil
}
