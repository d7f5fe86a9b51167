package domain

import "errors"

// Sentinel errors for domain-level instance validation.
var (
	// ErrEmptyVertexID indicates a vertex was given an empty identifier.
	ErrEmptyVertexID = errors.New("domain: vertex ID is empty")

	// ErrDuplicateVertexID indicates two vertices on the same side share an ID.
	ErrDuplicateVertexID = errors.New("domain: duplicate vertex ID")

	// ErrQuotaInverted indicates a vertex's upper quota is below its lower quota.
	ErrQuotaInverted = errors.New("domain: upper quota below lower quota")

	// ErrNegativeQuota indicates a vertex was given a negative quota.
	ErrNegativeQuota = errors.New("domain: negative quota")

	// ErrUnknownPartner indicates a preference entry references a vertex ID
	// absent from the opposite partition.
	ErrUnknownPartner = errors.New("domain: preference references unknown vertex")

	// ErrVertexNotFound indicates a lookup by ID found nothing.
	ErrVertexNotFound = errors.New("domain: vertex not found")
)
