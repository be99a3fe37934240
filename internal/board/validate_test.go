package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-match/internal/diagnostic"
)

func mustParse(t *testing.T, data string) *File {
	t.Helper()

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	return f
}

func findDiagnostic(d *diagnostic.Diagnostics, code string) *diagnostic.Diagnostic {
	for _, diag := range d.All() {
		if diag.Code == code {
			return &diag
		}
	}

	return nil
}

func TestValidateValidFile(t *testing.T) {
	res := Validate(mustParse(t, capitalsYAML))

	assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"board_disabled"}, res.Codes())
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"file_is_nil"}, res.Codes())

	res = Validate(&File{})
	assert.Equal(t, []string{"no_boards"}, res.Codes())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
	}{
		{
			name: "duplicate board names",
			yaml: `
boards:
  - {name: a, policy: "1:1", keys: [k], values: [v]}
  - {name: a, policy: "1:1", keys: [k], values: [v]}
  - {policy: "1:1", keys: [k], values: [v]}
`,
			errors: []string{"duplicate_board", "missing_board_name"},
		},
		{
			name: "duplicate and empty items",
			yaml: `
boards:
  - name: a
    policy: n:1
    keys: [k, k, ""]
    values: [v, v]
`,
			errors: []string{"duplicate_key", "empty_key_id", "duplicate_value"},
		},
		{
			name:     "no items",
			yaml:     "boards: [{name: a, policy: \"n:n\"}]",
			warnings: []string{"no_keys", "no_values"},
		},
		{
			name: "seed refers to undeclared ids",
			yaml: `
boards:
  - name: a
    policy: n:n
    keys: [france]
    values: [paris]
    seed:
      fance: [paris, pariss]
`,
			errors: []string{"unknown_seed_key", "unknown_seed_value"},
		},
		{
			name: "empty and duplicated value sets",
			yaml: `
boards:
  - name: a
    policy: n:n
    keys: [k1, k2]
    values: [v]
    seed:
      k1: []
      k2: [v, v]
`,
			errors: []string{"empty_value_set", "duplicate_seed_value"},
		},
		{
			name: "several values under a single value policy",
			yaml: `
boards:
  - name: a
    policy: many-to-one
    keys: [k]
    values: [v, w]
    seed:
      k: [v, w]
`,
			errors: []string{"too_many_values"},
		},
		{
			name: "shared value under one-to-one",
			yaml: `
boards:
  - name: a
    policy: one-to-one
    keys: [k1, k2]
    values: [v]
    seed:
      k1: v
      k2: v
`,
			errors: []string{"shared_value"},
		},
		{
			name: "shared value is fine under many-to-one",
			yaml: `
boards:
  - name: a
    policy: many-to-one
    keys: [k1, k2]
    values: [v]
    seed:
      k1: v
      k2: v
`,
		},
		{
			name: "unknown policy skips policy checks",
			yaml: `
boards:
  - name: a
    policy: one-to-on
    keys: [k1, k2]
    values: [v, w]
    seed:
      k1: [v, w]
      k2: v
`,
			errors: []string{"unknown_policy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))

			var errs, warns []string
			for _, d := range res.Errors {
				errs = append(errs, d.Code)
			}

			for _, d := range res.Warnings {
				warns = append(warns, d.Code)
			}

			assert.ElementsMatch(t, tt.errors, errs)
			assert.ElementsMatch(t, tt.warnings, warns)
		})
	}
}

func TestValidateSuggestions(t *testing.T) {
	res := Validate(mustParse(t, `
boards:
  - name: capitals
    policy: one-to-on
    keys: [france, spain]
    values: [paris, madrid]
    seed:
      fance: pariss
`))

	policy := findDiagnostic(res, "unknown_policy")
	require.NotNil(t, policy)
	require.NotEmpty(t, policy.Suggestions)
	assert.Equal(t, "one-to-one", policy.Suggestions[0])

	key := findDiagnostic(res, "unknown_seed_key")
	require.NotNil(t, key)
	assert.Equal(t, "capitals", key.Board)
	assert.Equal(t, "fance", key.ItemID)
	assert.Equal(t, []string{"france"}, key.Suggestions)

	value := findDiagnostic(res, "unknown_seed_value")
	require.NotNil(t, value)
	assert.Equal(t, []string{"paris"}, value.Suggestions)
	assert.Contains(t, value.String(), "did you mean paris?")
}
