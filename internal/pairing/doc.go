// Package pairing implements the selection protocol and reconciliation rules
// behind a "match the pairs" board.
//
// A board has two sides, keys and values. The user arms items on either side
// and, as soon as both sides hold at least one armed item, the pending
// selection is reconciled into the committed mapping and cleared.
//
// # Cardinality
//
//   - one-to-one (1:1): a key maps to one value, a value belongs to at most one key
//   - many-to-one (N:1): several keys may share a value, a key maps to one value
//   - many-to-many (N:N): a key maps to a set of values
//
// # Selection rules
//
// Selecting an armed id disarms it. On a scalar side (both sides of 1:1, the
// value side of N:1) selecting another id replaces the armed one; on a multi
// side it is appended.
//
// # Reconciliation
//
// The reconciler decides once, from the mapping as it was before the event,
// whether every pending key is already paired with every pending value. If so
// those associations are removed, otherwise the missing ones are added. Keys
// left without values are deleted. Under 1:1 assigning a value that another
// key owns evicts that key.
//
// A Machine is not safe for concurrent use.
package pairing
