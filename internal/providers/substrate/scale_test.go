package substrate

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	subkey "github.com/vedhavyas/go-subkey/v2"
)

func bigInt(t *testing.T, s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return n
}

func TestHexDecode(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}

	got, err := hexDecode("0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = hexDecode("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = hexDecode("0xnope")
	assert.Error(t, err)
}

// encodePreSignedMint hand-builds the wire form of a PreSignedMint record
func encodePreSignedMint(t *testing.T, restricted *types.AccountID, price *types.U128) []byte {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)

	require.NoError(t, enc.Encode(types.NewU32(12))) // collection
	require.NoError(t, enc.Encode(types.NewU32(5)))  // item
	require.NoError(t, enc.Encode([]attributePair{{
		Key:   types.Bytes("trait"),
		Value: types.Bytes("rare"),
	}}))
	require.NoError(t, enc.Encode(types.Bytes("metacid"))) // metadata

	if restricted != nil {
		require.NoError(t, enc.PushByte(1))
		require.NoError(t, enc.Encode(*restricted))
	} else {
		require.NoError(t, enc.PushByte(0))
	}

	require.NoError(t, enc.Encode(types.NewU32(500))) // deadline

	if price != nil {
		require.NoError(t, enc.PushByte(1))
		require.NoError(t, enc.Encode(*price))
	} else {
		require.NoError(t, enc.PushByte(0))
	}

	return buf.Bytes()
}

func TestPreSignedMintDecode(t *testing.T) {
	raw := encodePreSignedMint(t, nil, nil)

	var record preSignedMint
	require.NoError(t, codec.Decode(raw, &record))

	domainRecord := record.toDomain(42)
	assert.Equal(t, "12", string(domainRecord.Collection))
	assert.Equal(t, "5", string(domainRecord.Item))
	assert.Equal(t, "metacid", domainRecord.Metadata)
	assert.Equal(t, uint32(500), domainRecord.Deadline)
	require.Len(t, domainRecord.Attributes, 1)
	assert.Equal(t, "trait", domainRecord.Attributes[0].Key)
	assert.Equal(t, "rare", domainRecord.Attributes[0].Value)
	assert.Nil(t, domainRecord.OnlyAccount)
	assert.Nil(t, domainRecord.MintPrice)
}

func TestPreSignedMintDecode_Options(t *testing.T) {
	var account types.AccountID
	for i := range account {
		account[i] = byte(i + 1)
	}
	price := types.NewU128(*bigInt(t, "1000000000000"))

	raw := encodePreSignedMint(t, &account, &price)

	var record preSignedMint
	require.NoError(t, codec.Decode(raw, &record))

	domainRecord := record.toDomain(42)
	require.NotNil(t, domainRecord.OnlyAccount)
	require.NotNil(t, domainRecord.MintPrice)
	assert.Equal(t, "1000000000000", *domainRecord.MintPrice)

	// The restricted account round-trips through SS58
	_, pubkey, err := subkey.SS58Decode(*domainRecord.OnlyAccount)
	require.NoError(t, err)
	assert.Equal(t, account[:], pubkey)
}

func TestCollectionConfigRoundtrip(t *testing.T) {
	original := collectionConfig{
		Settings:     types.NewU64(0b110),
		HasMaxSupply: true,
		MaxSupply:    types.NewU32(1000),
		MintSettings: mintSettings{
			MintType:            mintTypeHolderOf,
			HolderOf:            types.NewU32(42),
			HasPrice:            true,
			Price:               types.NewU128(*bigInt(t, "5000000000")),
			HasStartBlock:       true,
			StartBlock:          types.NewU32(100),
			DefaultItemSettings: types.NewU64(0b001),
		},
	}

	raw, err := codec.Encode(original)
	require.NoError(t, err)

	var decoded collectionConfig
	require.NoError(t, codec.Decode(raw, &decoded))
	assert.Equal(t, original, decoded)

	config := decoded.toDomain(42)
	assert.Equal(t, uint64(0b110), config.Settings)
	require.NotNil(t, config.MaxSupply)
	assert.Equal(t, uint32(1000), *config.MaxSupply)
	assert.Equal(t, "holderOf", string(config.MintSettings.MintType))
	require.NotNil(t, config.MintSettings.HolderOfCollection)
	assert.Equal(t, "42", string(*config.MintSettings.HolderOfCollection))
	require.NotNil(t, config.MintSettings.Price)
	assert.Equal(t, "5000000000", *config.MintSettings.Price)
	require.NotNil(t, config.MintSettings.StartBlock)
	assert.Equal(t, uint32(100), *config.MintSettings.StartBlock)
	assert.Nil(t, config.MintSettings.EndBlock)
}

func TestCollectionConfigRoundtrip_Minimal(t *testing.T) {
	original := collectionConfig{
		Settings: types.NewU64(0),
		MintSettings: mintSettings{
			MintType:            mintTypeIssuer,
			DefaultItemSettings: types.NewU64(0),
		},
	}

	raw, err := codec.Encode(original)
	require.NoError(t, err)

	var decoded collectionConfig
	require.NoError(t, codec.Decode(raw, &decoded))
	assert.Equal(t, original, decoded)

	config := decoded.toDomain(42)
	assert.Nil(t, config.MaxSupply)
	assert.Equal(t, "issuer", string(config.MintSettings.MintType))
	assert.Nil(t, config.MintSettings.HolderOfCollection)
}

func TestRawEncodedPassthrough(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}

	raw, err := codec.Encode(rawEncoded(payload))
	require.NoError(t, err)

	// No length prefix, no transformation
	assert.Equal(t, payload, raw)
}
