// Package numerology implements the arithmetic core of the reading
// pipeline: digit reduction with master-number exceptions, derivation of
// the date-based numbers (life path and day/month/year energies), and the
// letter-table mapping that derives the expression, soul, and personality
// numbers from a full name.
//
// Everything here is a pure function over immutable inputs. The only
// configuration is the letter table, built once and never mutated.
package numerology
