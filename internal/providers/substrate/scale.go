package substrate

import (
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	subkey "github.com/vedhavyas/go-subkey/v2"

	"github.com/assethub-tools/nft-migrator/internal/domain"
)

// hexDecode decodes a hex string with or without the 0x prefix
func hexDecode(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return codec.HexDecodeString(s)
}

// attributePair is one (key, value) tuple inside a presigned mint authorization
type attributePair struct {
	Key   types.Bytes
	Value types.Bytes
}

// preSignedMint mirrors the nfts pallet PreSignedMint record on the wire
type preSignedMint struct {
	Collection     types.U32
	Item           types.U32
	Attributes     []attributePair
	Metadata       types.Bytes
	HasOnlyAccount bool
	OnlyAccount    types.AccountID
	Deadline       types.U32
	HasMintPrice   bool
	MintPrice      types.U128
}

func (p *preSignedMint) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&p.Collection); err != nil {
		return err
	}
	if err := decoder.Decode(&p.Item); err != nil {
		return err
	}
	if err := decoder.Decode(&p.Attributes); err != nil {
		return err
	}
	if err := decoder.Decode(&p.Metadata); err != nil {
		return err
	}

	hasAccount, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if hasAccount == 1 {
		p.HasOnlyAccount = true
		if err := decoder.Decode(&p.OnlyAccount); err != nil {
			return err
		}
	}

	if err := decoder.Decode(&p.Deadline); err != nil {
		return err
	}

	hasPrice, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if hasPrice == 1 {
		p.HasMintPrice = true
		if err := decoder.Decode(&p.MintPrice); err != nil {
			return err
		}
	}

	return nil
}

// toDomain converts the wire record into its domain form, SS58-encoding the
// restricted account with the configured network prefix
func (p *preSignedMint) toDomain(ss58Prefix uint16) *domain.PreSignedMint {
	record := &domain.PreSignedMint{
		Collection: domain.CollectionID(fmt.Sprintf("%d", p.Collection)),
		Item:       domain.ItemID(fmt.Sprintf("%d", p.Item)),
		Metadata:   string(p.Metadata),
		Deadline:   uint32(p.Deadline),
	}

	for _, attr := range p.Attributes {
		record.Attributes = append(record.Attributes, domain.CollectionAttribute{
			Key:   string(attr.Key),
			Value: string(attr.Value),
		})
	}

	if p.HasOnlyAccount {
		address := subkey.SS58Encode(p.OnlyAccount[:], ss58Prefix)
		record.OnlyAccount = &address
	}

	if p.HasMintPrice {
		price := p.MintPrice.String()
		record.MintPrice = &price
	}

	return record
}

// classDetails mirrors the uniques pallet ClassDetails record
type classDetails struct {
	Owner         types.AccountID
	Issuer        types.AccountID
	Admin         types.AccountID
	Freezer       types.AccountID
	TotalDeposit  types.U128
	FreeHolding   bool
	Items         types.U32
	ItemMetadatas types.U32
	Attributes    types.U32
	IsFrozen      bool
}

// collectionDetails mirrors the nfts pallet CollectionDetails record
type collectionDetails struct {
	Owner         types.AccountID
	OwnerDeposit  types.U128
	Items         types.U32
	ItemMetadatas types.U32
	ItemConfigs   types.U32
	Attributes    types.U32
}

// classMetadata mirrors the uniques pallet ClassMetadataOf record
type classMetadata struct {
	Deposit  types.U128
	Data     types.Bytes
	IsFrozen bool
}

// collectionMetadata mirrors the nfts pallet CollectionMetadataOf record
type collectionMetadata struct {
	Deposit types.U128
	Data    types.Bytes
}

// attributeValue is the stored value of an attribute entry. Only the leading
// data is read; the trailing deposit differs between the two pallets and is
// ignored.
type attributeValue struct {
	Data types.Bytes
}

func (a *attributeValue) Decode(decoder scale.Decoder) error {
	return decoder.Decode(&a.Data)
}

// Mint type variant indexes of the nfts pallet MintType enum
const (
	mintTypeIssuer   = 0
	mintTypePublic   = 1
	mintTypeHolderOf = 2
)

// mintSettings mirrors the nfts pallet MintSettings record
type mintSettings struct {
	MintType            byte
	HolderOf            types.U32
	HasPrice            bool
	Price               types.U128
	HasStartBlock       bool
	StartBlock          types.U32
	HasEndBlock         bool
	EndBlock            types.U32
	DefaultItemSettings types.U64
}

func (m *mintSettings) Decode(decoder scale.Decoder) error {
	variant, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	m.MintType = variant
	if variant == mintTypeHolderOf {
		if err := decoder.Decode(&m.HolderOf); err != nil {
			return err
		}
	}

	if m.HasPrice, err = decodeOption(decoder, &m.Price); err != nil {
		return err
	}
	if m.HasStartBlock, err = decodeOption(decoder, &m.StartBlock); err != nil {
		return err
	}
	if m.HasEndBlock, err = decodeOption(decoder, &m.EndBlock); err != nil {
		return err
	}

	return decoder.Decode(&m.DefaultItemSettings)
}

func (m mintSettings) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(m.MintType); err != nil {
		return err
	}
	if m.MintType == mintTypeHolderOf {
		if err := encoder.Encode(m.HolderOf); err != nil {
			return err
		}
	}

	if err := encodeOption(encoder, m.HasPrice, m.Price); err != nil {
		return err
	}
	if err := encodeOption(encoder, m.HasStartBlock, m.StartBlock); err != nil {
		return err
	}
	if err := encodeOption(encoder, m.HasEndBlock, m.EndBlock); err != nil {
		return err
	}

	return encoder.Encode(m.DefaultItemSettings)
}

// collectionConfig mirrors the nfts pallet CollectionConfig record
type collectionConfig struct {
	Settings     types.U64
	HasMaxSupply bool
	MaxSupply    types.U32
	MintSettings mintSettings
}

func (c *collectionConfig) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&c.Settings); err != nil {
		return err
	}

	var err error
	if c.HasMaxSupply, err = decodeOption(decoder, &c.MaxSupply); err != nil {
		return err
	}

	return decoder.Decode(&c.MintSettings)
}

func (c collectionConfig) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(c.Settings); err != nil {
		return err
	}
	if err := encodeOption(encoder, c.HasMaxSupply, c.MaxSupply); err != nil {
		return err
	}
	return c.MintSettings.Encode(encoder)
}

func (c *collectionConfig) toDomain(ss58Prefix uint16) *domain.CollectionConfig {
	config := &domain.CollectionConfig{
		Settings: uint64(c.Settings),
		MintSettings: domain.MintSettings{
			DefaultItemSettings: uint64(c.MintSettings.DefaultItemSettings),
		},
	}

	if c.HasMaxSupply {
		maxSupply := uint32(c.MaxSupply)
		config.MaxSupply = &maxSupply
	}

	switch c.MintSettings.MintType {
	case mintTypePublic:
		config.MintSettings.MintType = domain.MintTypePublic
	case mintTypeHolderOf:
		config.MintSettings.MintType = domain.MintTypeHolderOf
		holderOf := domain.CollectionID(fmt.Sprintf("%d", c.MintSettings.HolderOf))
		config.MintSettings.HolderOfCollection = &holderOf
	default:
		config.MintSettings.MintType = domain.MintTypeIssuer
	}

	if c.MintSettings.HasPrice {
		price := c.MintSettings.Price.String()
		config.MintSettings.Price = &price
	}
	if c.MintSettings.HasStartBlock {
		start := uint32(c.MintSettings.StartBlock)
		config.MintSettings.StartBlock = &start
	}
	if c.MintSettings.HasEndBlock {
		end := uint32(c.MintSettings.EndBlock)
		config.MintSettings.EndBlock = &end
	}

	return config
}

// sr25519Signature encodes a MultiSignature with the Sr25519 variant
type sr25519Signature struct {
	Signature types.Signature
}

func (s sr25519Signature) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encoder.Encode(s.Signature)
}

// rawEncoded passes pre-encoded SCALE bytes through verbatim. Claim
// submissions reuse the exact bytes the snapshot signer authorized.
type rawEncoded []byte

func (r rawEncoded) Encode(encoder scale.Encoder) error {
	return encoder.Write(r)
}

// optionKey encodes an Option<T> map key component (used for the attribute
// storage key's Option<ItemId>, always None for collection-level attributes)
type optionNone struct{}

func (optionNone) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(0)
}

// attributeNamespaceCollectionOwner encodes the CollectionOwner variant of the
// nfts AttributeNamespace enum
type attributeNamespaceCollectionOwner struct{}

func (attributeNamespaceCollectionOwner) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(1)
}

func decodeOption(decoder scale.Decoder, target interface{}) (bool, error) {
	present, err := decoder.ReadOneByte()
	if err != nil {
		return false, err
	}
	if present != 1 {
		return false, nil
	}
	return true, decoder.Decode(target)
}

func encodeOption(encoder scale.Encoder, present bool, value interface{}) error {
	if !present {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encoder.Encode(value)
}
