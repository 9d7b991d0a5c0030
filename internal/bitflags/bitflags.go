package bitflags

import (
	"fmt"
)

// Option names for the nfts pallet bitflag enums, in bit order (least
// significant bit first). The settings bitfields use inverted polarity: a set
// bit means the capability is locked, while callers reason about "allowed".
const (
	SettingTransferableItems  = "TransferableItems"
	SettingUnlockedMetadata   = "UnlockedMetadata"
	SettingUnlockedAttributes = "UnlockedAttributes"
	SettingUnlockedMaxSupply  = "UnlockedMaxSupply"
	SettingDepositRequired    = "DepositRequired"

	ItemSettingTransferable       = "Transferable"
	ItemSettingUnlockedMetadata   = "UnlockedMetadata"
	ItemSettingUnlockedAttributes = "UnlockedAttributes"

	RoleIssuer  = "Issuer"
	RoleFreezer = "Freezer"
	RoleAdmin   = "Admin"
)

// BitFlags decodes named boolean options out of an integer bitmask.
// Bit i corresponds to options[i].
type BitFlags struct {
	flags    map[string]uint64
	inverted bool
}

// New creates a BitFlags decoder over the given option order. With inverted
// polarity the raw containment test is negated on the way out.
func New(options []string, inverted bool) *BitFlags {
	flags := make(map[string]uint64, len(options))
	for i, option := range options {
		flags[option] = 1 << uint(i)
	}
	return &BitFlags{flags: flags, inverted: inverted}
}

// Has reports whether the named option is set in the mask
func (b *BitFlags) Has(option string, mask uint64) (bool, error) {
	bit, ok := b.flags[option]
	if !ok {
		return false, fmt.Errorf("unknown bitflag option: %s", option)
	}

	set := mask&bit == bit
	if b.inverted {
		return !set, nil
	}
	return set, nil
}

// ToBitmask encodes a boolean vector into a bitmask, least significant bit
// first. With inverted polarity a true value is stored as a cleared bit.
func ToBitmask(values []bool, inverted bool) uint64 {
	var mask uint64
	for i, value := range values {
		if value != inverted {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// CollectionSettingOptions is the PalletNftsCollectionSetting bit order
func CollectionSettingOptions() []string {
	return []string{
		SettingTransferableItems,
		SettingUnlockedMetadata,
		SettingUnlockedAttributes,
		SettingUnlockedMaxSupply,
		SettingDepositRequired,
	}
}

// ItemSettingOptions is the PalletNftsItemSetting bit order
func ItemSettingOptions() []string {
	return []string{
		ItemSettingTransferable,
		ItemSettingUnlockedMetadata,
		ItemSettingUnlockedAttributes,
	}
}

// RoleOptions is the PalletNftsCollectionRole bit order
func RoleOptions() []string {
	return []string{
		RoleIssuer,
		RoleFreezer,
		RoleAdmin,
	}
}

// CollectionSettings returns a decoder for collection settings masks (inverted:
// a set bit means locked)
func CollectionSettings() *BitFlags {
	return New(CollectionSettingOptions(), true)
}

// ItemSettings returns a decoder for item settings masks (inverted)
func ItemSettings() *BitFlags {
	return New(ItemSettingOptions(), true)
}

// Roles returns a decoder for collection role masks (normal polarity)
func Roles() *BitFlags {
	return New(RoleOptions(), false)
}
