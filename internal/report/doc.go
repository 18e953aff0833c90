// Package report composes a resolved archetype profile into the final
// human-readable reading. Composition is deterministic: the same profile
// always produces byte-identical text.
package report
