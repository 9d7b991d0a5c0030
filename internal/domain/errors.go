package domain

import "errors"

var (
	// ErrChainNotReady is returned when no chain connection is available
	ErrChainNotReady = errors.New("chain connection not ready")

	// ErrCollectionNotFound is returned when a collection does not exist on-chain
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrNotCollectionOwner is returned when the acting account does not own the collection
	ErrNotCollectionOwner = errors.New("account is not the collection owner")
)
