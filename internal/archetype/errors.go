package archetype

import "errors"

// Common errors returned by the archetype package.
var (
	// ErrKnowledgeBaseGap is returned when a (dimension, number) pair has
	// no catalog entry. The catalog verifies completeness at load time, so
	// hitting this at resolution time signals a configuration defect, not
	// bad user input. It must never be swallowed or papered over with an
	// empty descriptor.
	ErrKnowledgeBaseGap = errors.New("knowledge base has no entry for dimension/number pair")

	// ErrInvalidCatalog is returned when the knowledge-base data fails to
	// parse or fails structural validation.
	ErrInvalidCatalog = errors.New("invalid knowledge base data")
)
