// Package archetype holds the knowledge base that maps resolved numbers
// to archetype descriptors, and the resolver that blends a numeric
// profile into a full archetype profile.
//
// The knowledge base is pure data: an embedded YAML document expanded at
// load time into an immutable (dimension, number) lookup. Content edits
// never touch the blending logic.
package archetype
