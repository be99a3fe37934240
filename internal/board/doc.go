// Package board provides the YAML board file format, its loader and
// validation, and event scripts that drive a board non-interactively.
//
// # Board file
//
//	version: "1"
//	boards:
//	  - name: capitals
//	    policy: one-to-one        # one-to-one | many-to-one | many-to-many (1:1, N:1, N:N)
//	    keys:
//	      - france
//	      - spain: Spain          # id with a display label
//	    values: [paris, madrid]
//	    # Initial mapping. A value may be given as a single id or a list.
//	    seed:
//	      france: paris
//	      spain: [madrid]
//
// # Event script
//
//	board: capitals
//	events:
//	  - key: france
//	  - value: madrid
//	  - "key:spain"               # shorthand
//	  - {kind: value, id: paris}  # explicit
//
// # Validation
//
// Validate reports duplicate board names and item ids, unknown policies,
// seeds referring to undeclared ids, empty or duplicated value sets, several
// values under a single-value policy and, for one-to-one boards, values
// shared by several keys. Misspelled ids come with suggestions.
package board
