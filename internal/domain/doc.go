// Package domain defines the core value types of the numerology reading
// pipeline: birth dates, full names, reduced numbers, numeric profiles,
// archetype descriptors, and composed reports.
//
// All types in this package are immutable value types. They carry no
// behavior beyond validation and derived accessors, which keeps the
// arithmetic, resolution, and composition packages pure functions over
// this data.
package domain
