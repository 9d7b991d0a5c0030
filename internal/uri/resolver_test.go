package uri_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assethub-tools/nft-migrator/internal/uri"
)

const (
	cidV0 = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	cidV1 = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func newTestResolver() uri.Resolver {
	return uri.NewResolver(&uri.Config{
		Gateway:         "https://gateway.example/ipfs/",
		MetadataGateway: "https://metadata.example/ipfs/",
		ImagesGateway:   "https://images.example/ipfs/",
	})
}

func TestHash(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, cidV0, r.Hash(cidV0))
	assert.Equal(t, cidV0, r.Hash("ipfs://"+cidV0))
	assert.Equal(t, cidV1, r.Hash("ipfs://"+cidV1))
	assert.Equal(t, "", r.Hash(""))

	// HTTP URLs pass through untouched, even when they embed a CID
	url := "http://other.example/ipfs/" + cidV0
	assert.Equal(t, url, r.Hash(url))

	// Unrecognized values are returned as-is
	assert.Equal(t, "not-a-cid", r.Hash("not-a-cid"))
}

func TestHash_BoundaryCheck(t *testing.T) {
	r := newTestResolver()

	// A CID-length prefix of a longer alphanumeric run is not a match
	assert.Equal(t, "ipfs://"+cidV1+"extra", r.Hash("ipfs://"+cidV1+"extra"))

	// A trailing path separator is a valid boundary
	assert.Equal(t, cidV0, r.Hash("ipfs://"+cidV0+"/file.json"))
}

func TestFetchableURL(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "https://gateway.example/ipfs/"+cidV0, r.FetchableURL(cidV0, ""))
	assert.Equal(t, "https://custom.example/ipfs/"+cidV0, r.FetchableURL(cidV0, "https://custom.example/ipfs/"))
	assert.Equal(t, "", r.FetchableURL("", ""))

	url := "https://direct.example/data.json"
	assert.Equal(t, url, r.FetchableURL(url, ""))
}

func TestMetadataAndImageURLs(t *testing.T) {
	r := newTestResolver()

	assert.True(t, strings.HasPrefix(r.MetadataURL(cidV0), "https://metadata.example/ipfs/"))
	assert.True(t, strings.HasPrefix(r.ImageURL(cidV1), "https://images.example/ipfs/"))
	assert.Equal(t, "", r.MetadataURL(""))
	assert.Equal(t, "", r.ImageURL(""))
}
