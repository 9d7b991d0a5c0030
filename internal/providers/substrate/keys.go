package substrate

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Storage pallet/item names for the two NFT pallets on Asset Hub
const (
	palletUniques = "Uniques"
	palletNfts    = "Nfts"

	storageClass                = "Class"
	storageClassAccount         = "ClassAccount"
	storageClassMetadataOf      = "ClassMetadataOf"
	storageCollection           = "Collection"
	storageCollectionAccount    = "CollectionAccount"
	storageCollectionMetadataOf = "CollectionMetadataOf"
	storageCollectionConfigOf   = "CollectionConfigOf"
	storageCollectionRoleOf     = "CollectionRoleOf"
	storageAttribute            = "Attribute"
	storageItem                 = "Item"
	storageNextCollectionID     = "NextCollectionId"
)

// storagePrefix builds the 32-byte twox128(pallet) ++ twox128(item) prefix
func storagePrefix(pallet, item string) []byte {
	prefix := xxhash.New128([]byte(pallet)).Sum(nil)
	return append(prefix, xxhash.New128([]byte(item)).Sum(nil)...)
}

// blake2_128Concat hashes an encoded map key the way blake2_128_concat storage
// hashers do: 16-byte blake2b digest followed by the encoded key itself
func blake2_128Concat(encoded []byte) ([]byte, error) {
	hasher, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}
	if _, err := hasher.Write(encoded); err != nil {
		return nil, err
	}
	return append(hasher.Sum(nil), encoded...), nil
}

// appendMapKey appends one blake2_128_concat-hashed key component to a storage key
func appendMapKey(key []byte, component interface{}) ([]byte, error) {
	encoded, err := codec.Encode(component)
	if err != nil {
		return nil, fmt.Errorf("failed to encode storage key component: %w", err)
	}
	hashed, err := blake2_128Concat(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to hash storage key component: %w", err)
	}
	return append(key, hashed...), nil
}

// mapKey builds a full storage key for a (possibly n-level) blake2_128_concat map
func mapKey(pallet, item string, components ...interface{}) (types.StorageKey, error) {
	key := storagePrefix(pallet, item)
	for _, component := range components {
		var err error
		key, err = appendMapKey(key, component)
		if err != nil {
			return nil, err
		}
	}
	return types.StorageKey(key), nil
}

// tailU32 decodes the trailing 4 bytes of a storage key as a little-endian u32.
// Collection and item ids sit at the end of their blake2_128_concat map keys.
func tailU32(key types.StorageKey) (uint32, error) {
	if len(key) < 4 {
		return 0, fmt.Errorf("storage key too short: %d bytes", len(key))
	}
	var id types.U32
	if err := codec.Decode(key[len(key)-4:], &id); err != nil {
		return 0, fmt.Errorf("failed to decode key tail: %w", err)
	}
	return uint32(id), nil
}

// tailAccountID decodes the trailing 32 bytes of a storage key as an account id
func tailAccountID(key types.StorageKey) (types.AccountID, error) {
	var account types.AccountID
	if len(key) < 32 {
		return account, fmt.Errorf("storage key too short: %d bytes", len(key))
	}
	copy(account[:], key[len(key)-32:])
	return account, nil
}

// tailBytes decodes a SCALE Vec<u8> starting at offset within the key. Used to
// recover attribute key text from the final blake2_128_concat component.
func tailBytes(key types.StorageKey, offset int) ([]byte, error) {
	if len(key) < offset {
		return nil, fmt.Errorf("storage key too short: %d bytes, want offset %d", len(key), offset)
	}
	var data types.Bytes
	if err := codec.Decode(key[offset:], &data); err != nil {
		return nil, fmt.Errorf("failed to decode key tail bytes: %w", err)
	}
	return data, nil
}
