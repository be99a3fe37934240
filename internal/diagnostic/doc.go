// Package diagnostic collects the problems found while checking board files.
//
// Problems are not returned one at a time: a check run gathers every error,
// warning and note so a board author can fix them in one pass.
package diagnostic
