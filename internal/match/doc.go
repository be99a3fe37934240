// Package match resolves free-form item references to the ids declared on a
// board and ranks close ids for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeID: folds case and separators so "PizzaShop" and "pizza-shop" compare equal
//   - Similarity: normalized Levenshtein similarity between two ids
//   - Rank: orders known ids by similarity to an input
//   - Resolve: maps input to a single known id when the match is unambiguous
package match
