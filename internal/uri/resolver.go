package uri

import (
	"regexp"
	"strings"
)

// CIDv0 is 46 characters ("Qm" + 44 base58), CIDv1 is a 59 character lowercase
// base32 string. Both are matched by fixed-length pattern anywhere inside the
// stored link, so ipfs:// and gateway-prefixed links resolve to the bare hash.
var (
	cidV0Pattern = regexp.MustCompile(`Qm[A-Za-z0-9]{44}`)
	cidV1Pattern = regexp.MustCompile(`[a-z0-9]{59}`)
)

// Config holds the gateway bases used to build fetchable URLs
type Config struct {
	// Gateway is the general-purpose IPFS gateway base (trailing slash included)
	Gateway string
	// MetadataGateway serves JSON metadata documents
	MetadataGateway string
	// ImagesGateway serves image content
	ImagesGateway string
}

// Resolver turns opaque content identifiers into fetchable URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Hash extracts the bare content hash from a link. HTTP(S) URLs pass
	// through unchanged; unrecognized values are returned as-is.
	Hash(cid string) string

	// FetchableURL builds a URL for the content id against the general
	// gateway, or against the given alternate gateway base when non-empty
	FetchableURL(cid string, gateway string) string

	// MetadataURL builds a URL for a JSON metadata document
	MetadataURL(cid string) string

	// ImageURL builds a URL for image content
	ImageURL(cid string) string
}

type resolver struct {
	config *Config
}

// NewResolver creates a resolver over the configured gateways
func NewResolver(config *Config) Resolver {
	return &resolver{config: config}
}

func (r *resolver) Hash(cid string) string {
	if cid == "" {
		return ""
	}
	if strings.HasPrefix(cid, "http") {
		return cid
	}

	if match := findBounded(cidV0Pattern, cid); match != "" {
		return match
	}
	if match := findBounded(cidV1Pattern, cid); match != "" {
		return match
	}

	return cid
}

func (r *resolver) FetchableURL(cid string, gateway string) string {
	hash := r.Hash(cid)
	if hash == "" {
		return ""
	}
	if strings.HasPrefix(hash, "http") {
		return hash
	}

	if gateway == "" {
		gateway = r.config.Gateway
	}
	return gateway + hash
}

func (r *resolver) MetadataURL(cid string) string {
	hash := r.Hash(cid)
	if hash == "" {
		return ""
	}
	if strings.HasPrefix(hash, "http") {
		return hash
	}
	return r.config.MetadataGateway + hash
}

func (r *resolver) ImageURL(cid string) string {
	hash := r.Hash(cid)
	if hash == "" {
		return ""
	}
	if strings.HasPrefix(hash, "http") {
		return hash
	}
	return r.config.ImagesGateway + hash
}

// findBounded returns the first pattern match that is not immediately followed
// by another alphanumeric character, so a 59-char prefix of a longer blob does
// not match
func findBounded(pattern *regexp.Regexp, s string) string {
	for _, loc := range pattern.FindAllStringIndex(s, -1) {
		end := loc[1]
		if end < len(s) && isAlphanumeric(s[end]) {
			continue
		}
		return s[loc[0]:end]
	}
	return ""
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
