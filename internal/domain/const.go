package domain

const (
	// Attribute keys recognized in a collection's CollectionOwner attribute namespace
	AttributeKeySnapshot = "SNAPSHOT"
	AttributeKeyProvider = "PROVIDER"

	// MaxClaimableItems caps the number of presigned records accepted from a
	// single snapshot document
	MaxClaimableItems = 100

	// Gateway defaults
	DefaultIPFSGateway     = "https://ipfs.io/ipfs/"
	DefaultMetadataGateway = "https://ipfs.io/ipfs/"
	DefaultImagesGateway   = "https://ipfs.io/ipfs/"
)
