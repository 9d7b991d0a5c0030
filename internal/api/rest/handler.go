package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/assethub-tools/nft-migrator/internal/bitflags"
	"github.com/assethub-tools/nft-migrator/internal/collections"
	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/mapper"
	"github.com/assethub-tools/nft-migrator/internal/migration"
	"github.com/assethub-tools/nft-migrator/internal/providers/substrate"
	"github.com/assethub-tools/nft-migrator/internal/reconciler"
	"github.com/assethub-tools/nft-migrator/internal/store"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCollections lists the collections an account owns in one pallet
	// GET /api/v1/collections/:pallet?owner=<address>
	ListCollections(c *gin.Context)

	// GetCollection retrieves a single collection record
	// GET /api/v1/collections/:pallet/:id
	GetCollection(c *gin.Context)

	// GetCollectionRoles retrieves the privileged accounts of a collection
	// GET /api/v1/collections/:pallet/:id/roles
	GetCollectionRoles(c *gin.Context)

	// GetCollectionAttributes lists the owner-namespace attributes of a collection
	// GET /api/v1/collections/:pallet/:id/attributes
	GetCollectionAttributes(c *gin.Context)

	// GetMappings computes the chain-wide source/target collection pairs,
	// optionally narrowed to one owner
	// GET /api/v1/migrations/mappings[?owner=<address>]
	GetMappings(c *gin.Context)

	// Reconcile runs snapshot reconciliation over one collection pair
	// POST /api/v1/migrations/reconcile
	Reconcile(c *gin.Context)

	// ExecuteClaims redeems claimable items with the service signer
	// POST /api/v1/migrations/claims
	ExecuteClaims(c *gin.Context)

	// ListClaims retrieves journaled submissions
	// GET /api/v1/migrations/claims?targetCollection=<id>&account=<address>&limit=<limit>&offset=<offset>
	ListClaims(c *gin.Context)

	// CreateCollection creates a new nfts collection owned by the service signer
	// POST /api/v1/collections
	CreateCollection(c *gin.Context)

	// SetTeam replaces the team of a signer-owned nfts collection
	// PUT /api/v1/collections/nfts/:id/team
	SetTeam(c *gin.Context)

	// AttachSnapshot writes the snapshot reference attributes of a collection
	// PUT /api/v1/collections/:pallet/:id/snapshot
	AttachSnapshot(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	reader       collections.Reader
	mapper       mapper.Mapper
	reconciler   reconciler.Reconciler
	orchestrator migration.Orchestrator
	store        store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(
	reader collections.Reader,
	mapper mapper.Mapper,
	rec reconciler.Reconciler,
	orchestrator migration.Orchestrator,
	st store.Store,
) Handler {
	return &handler{
		reader:       reader,
		mapper:       mapper,
		reconciler:   rec,
		orchestrator: orchestrator,
		store:        st,
	}
}

// palletParam parses and validates the :pallet path parameter
func palletParam(c *gin.Context) (domain.Pallet, bool) {
	pallet := domain.Pallet(c.Param("pallet"))
	if !domain.IsValidPallet(pallet) {
		respondBadRequest(c, "Unknown pallet", string(pallet))
		return "", false
	}
	return pallet, true
}

// respondDomainError maps shared domain errors onto HTTP responses
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrChainNotReady):
		respondChainNotReady(c)
	case errors.Is(err, domain.ErrCollectionNotFound):
		respondNotFound(c, "Collection not found")
	case errors.Is(err, domain.ErrNotCollectionOwner):
		respondForbidden(c, "Collection is not owned by the service signer")
	default:
		respondInternalError(c, err, message)
	}
}

func (h *handler) ListCollections(c *gin.Context) {
	pallet, ok := palletParam(c)
	if !ok {
		return
	}

	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "Owner address is required")
		return
	}

	records, err := h.reader.OwnedCollections(c.Request.Context(), pallet, owner)
	if err != nil {
		respondInternalError(c, err, "Failed to list collections", zap.String("owner", owner))
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": records})
}

func (h *handler) GetCollection(c *gin.Context) {
	pallet, ok := palletParam(c)
	if !ok {
		return
	}

	record, err := h.reader.Collection(c.Request.Context(), pallet, domain.CollectionID(c.Param("id")))
	if err != nil {
		respondDomainError(c, err, "Failed to get collection")
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *handler) GetCollectionRoles(c *gin.Context) {
	pallet, ok := palletParam(c)
	if !ok {
		return
	}

	roles, err := h.reader.Roles(c.Request.Context(), pallet, domain.CollectionID(c.Param("id")))
	if err != nil {
		respondDomainError(c, err, "Failed to get collection roles")
		return
	}

	c.JSON(http.StatusOK, roles)
}

func (h *handler) GetCollectionAttributes(c *gin.Context) {
	pallet, ok := palletParam(c)
	if !ok {
		return
	}

	attributes, err := h.reader.Attributes(c.Request.Context(), pallet, domain.CollectionID(c.Param("id")))
	if err != nil {
		respondDomainError(c, err, "Failed to get collection attributes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"attributes": attributes})
}

func (h *handler) GetMappings(c *gin.Context) {
	mappings := h.mapper.LoadMappedCollections(c.Request.Context())

	if owner := c.Query("owner"); owner != "" {
		filtered := make([]domain.MappedCollection, 0, len(mappings))
		for _, mapping := range mappings {
			if mapping.Owner == owner {
				filtered = append(filtered, mapping)
			}
		}
		mappings = filtered
	}

	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}

func (h *handler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), reconciler.Params{
		SourceCollection: domain.CollectionID(req.SourceCollection),
		TargetCollection: domain.CollectionID(req.TargetCollection),
		Account:          req.Account,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to reconcile snapshot",
			zap.String("sourceCollection", req.SourceCollection),
			zap.String("targetCollection", req.TargetCollection),
		)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ExecuteClaims(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var item *domain.ItemID
	if req.Item != nil {
		id := domain.ItemID(*req.Item)
		item = &id
	}

	result, err := h.orchestrator.ExecuteClaims(c.Request.Context(), reconciler.Params{
		SourceCollection: domain.CollectionID(req.SourceCollection),
		TargetCollection: domain.CollectionID(req.TargetCollection),
		Account:          req.Account,
	}, item)
	if err != nil {
		respondDomainError(c, err, "Failed to execute claims")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListClaims(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 || limit > maxListLimit {
		respondBadRequest(c, "Invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondBadRequest(c, "Invalid offset")
		return
	}

	target := c.Query("targetCollection")
	account := c.Query("account")

	switch {
	case target != "":
		records, err := h.store.ListClaimRecords(c.Request.Context(), domain.CollectionID(target), limit, offset)
		if err != nil {
			respondInternalError(c, err, "Failed to list claims")
			return
		}
		c.JSON(http.StatusOK, gin.H{"claims": records})
	case account != "":
		records, err := h.store.ListClaimRecordsByAccount(c.Request.Context(), account, limit, offset)
		if err != nil {
			respondInternalError(c, err, "Failed to list claims")
			return
		}
		c.JSON(http.StatusOK, gin.H{"claims": records})
	default:
		respondBadRequest(c, "Either targetCollection or account is required")
	}
}

func (h *handler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	config, err := collectionConfigFromRequest(&req)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, submission, err := h.orchestrator.CreateCollection(c.Request.Context(), substrate.CreateCollectionParams{
		Metadata: req.Metadata,
		Config:   *config,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to create collection")
		return
	}

	c.JSON(http.StatusCreated, CreateCollectionResponse{
		Collection: id,
		Outcome:    submission.Outcome,
		TxHash:     submission.TxHash,
	})
}

func (h *handler) SetTeam(c *gin.Context) {
	var req SetTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	submission, err := h.orchestrator.SetTeam(c.Request.Context(), domain.CollectionID(c.Param("id")), domain.CollectionRoles{
		Admin:   req.Admin,
		Issuer:  req.Issuer,
		Freezer: req.Freezer,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to set collection team")
		return
	}

	c.JSON(http.StatusOK, SubmissionResponse{Outcome: submission.Outcome, TxHash: submission.TxHash})
}

func (h *handler) AttachSnapshot(c *gin.Context) {
	pallet, ok := palletParam(c)
	if !ok {
		return
	}

	var req AttachSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	submission, err := h.orchestrator.AttachSnapshot(c.Request.Context(), pallet, domain.CollectionID(c.Param("id")), domain.SnapshotRef{
		Link:     req.Link,
		Provider: req.Provider,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to attach snapshot")
		return
	}

	c.JSON(http.StatusOK, SubmissionResponse{Outcome: submission.Outcome, TxHash: submission.TxHash})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// collectionConfigFromRequest assembles the pallet configuration bitmasks from
// the request's named flags
func collectionConfigFromRequest(req *CreateCollectionRequest) (*domain.CollectionConfig, error) {
	settings := bitflags.ToBitmask([]bool{
		req.TransferableItems,
		req.UnlockedMetadata,
		req.UnlockedAttributes,
		req.UnlockedMaxSupply,
		req.DepositRequired,
	}, true)

	itemSettings := bitflags.ToBitmask([]bool{
		req.ItemsTransferable,
		req.ItemsUnlockedMetadata,
		req.ItemsUnlockedAttributes,
	}, true)

	config := &domain.CollectionConfig{
		Settings:  settings,
		MaxSupply: req.MaxSupply,
		MintSettings: domain.MintSettings{
			Price:               req.Price,
			StartBlock:          req.StartBlock,
			EndBlock:            req.EndBlock,
			DefaultItemSettings: itemSettings,
		},
	}

	switch req.MintType {
	case "", string(domain.MintTypeIssuer):
		config.MintSettings.MintType = domain.MintTypeIssuer
	case string(domain.MintTypePublic):
		config.MintSettings.MintType = domain.MintTypePublic
	case string(domain.MintTypeHolderOf):
		if req.HolderOfCollection == nil {
			return nil, errors.New("holderOf mint type requires holderOfCollection")
		}
		holder := domain.CollectionID(*req.HolderOfCollection)
		config.MintSettings.MintType = domain.MintTypeHolderOf
		config.MintSettings.HolderOfCollection = &holder
	default:
		return nil, errors.New("unknown mint type: " + req.MintType)
	}

	return config, nil
}
