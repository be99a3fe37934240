package board

import (
	"fmt"
	"slices"
	"strings"

	"quiz-match/internal/common"
	"quiz-match/internal/diagnostic"
	"quiz-match/internal/match"
	"quiz-match/internal/pairing"
)

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// Validate checks the structure of every board in f. It never stops at the
// first problem; all findings are collected.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "board file is nil", "", "")
		return res
	}

	if len(f.Boards) == 0 {
		res.AddError("no_boards", "board file defines no boards", "", "")
		return res
	}

	names := common.Seen[string]{}

	for i := range f.Boards {
		b := &f.Boards[i]

		switch {
		case b.Name == "":
			res.AddError("missing_board_name", fmt.Sprintf("board #%d has no name", i+1), "", "")
		case !names.Add(b.Name):
			res.AddError("duplicate_board", fmt.Sprintf("duplicate board %q", b.Name), b.Name, "")
		}

		validateBoard(res, b)
	}

	return res
}

func validateBoard(res *diagnostic.Diagnostics, b *Board) {
	c, err := b.Cardinality()
	if err != nil {
		res.AddError("unknown_policy",
			fmt.Sprintf("unknown policy %q", b.Policy),
			b.Name, "",
			match.Suggest(b.Policy, pairing.Names(), maxSuggestions)...)
	}

	validateItems(res, b.Name, "key", b.Keys)
	validateItems(res, b.Name, "value", b.Values)

	if b.Disabled {
		res.AddInfo("board_disabled", "board starts disabled", b.Name, "")
	}

	// Seed checks that depend on the policy are skipped when it is unknown.
	validateSeed(res, b, c, err == nil)
}

func validateItems(res *diagnostic.Diagnostics, board, side string, items ItemList) {
	if len(items) == 0 {
		res.AddWarning("no_"+side+"s", fmt.Sprintf("board declares no %ss", side), board, "")
		return
	}

	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			res.AddError("empty_"+side+"_id", fmt.Sprintf("%s #%d has an empty id", side, i+1), board, "")
		}
	}

	for _, id := range common.Duplicates(items.IDs()) {
		if id != "" {
			res.AddError("duplicate_"+side, fmt.Sprintf("duplicate %s %q", side, id), board, id)
		}
	}
}

func validateSeed(res *diagnostic.Diagnostics, b *Board, c pairing.Cardinality, known bool) {
	keys := b.KeyIDs()
	values := b.ValueIDs()

	owners := map[string]string{}

	for _, k := range common.SortedKeys(b.Seed) {
		vs := b.Seed[k]

		if !slices.Contains(keys, k) {
			res.AddError("unknown_seed_key",
				fmt.Sprintf("seed key %q is not declared", k),
				b.Name, k,
				match.Suggest(k, keys, maxSuggestions)...)
		}

		if len(vs) == 0 {
			res.AddError("empty_value_set", fmt.Sprintf("seed key %q has no values", k), b.Name, k)
			continue
		}

		if known && c != pairing.CardinalityManyToMany && vs.IsMultiple() {
			res.AddError("too_many_values",
				fmt.Sprintf("seed key %q has %d values, %s allows one", k, len(vs), c.Short()),
				b.Name, k)
		}

		listed := common.Seen[string]{}

		for _, v := range vs {
			if !listed.Add(v) {
				res.AddError("duplicate_seed_value", fmt.Sprintf("seed key %q lists %q twice", k, v), b.Name, k)
				continue
			}

			if !slices.Contains(values, v) {
				res.AddError("unknown_seed_value",
					fmt.Sprintf("seed value %q of key %q is not declared", v, k),
					b.Name, v,
					match.Suggest(v, values, maxSuggestions)...)
			}

			if !known || c != pairing.CardinalityOneToOne {
				continue
			}

			if owner, ok := owners[v]; ok {
				res.AddError("shared_value",
					fmt.Sprintf("value %q is seeded for both %q and %q, one-to-one allows one key", v, owner, k),
					b.Name, v)
				continue
			}

			owners[v] = k
		}
	}
}
