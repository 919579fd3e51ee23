package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleJSONMustParse(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.JSON = `{"max": 10, "window": "1d"}`
	assert.NoError(t, validateRuleContent(&r))

	r.JSON = "{invalid}"
	err := validateRuleContent(&r)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindJSON, ve.Kind)
	assert.True(t, strings.HasPrefix(ve.Message, "Invalid JSON configuration:"), ve.Message)
}

func TestRuleJSONArbitraryShapesAccepted(t *testing.T) {
	t.Parallel()

	// Any well-formed JSON passes; no schema applies.
	for _, js := range []string{`[]`, `"text"`, `42`, `null`, `{"a":{"b":[1,2]}}`} {
		r := validRule(t)
		r.JSON = js
		assert.NoError(t, validateRuleContent(&r), js)
	}
}

func TestRuleTemplateBraceBalance(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.Template = "Alert for {account}: {value}"
	assert.NoError(t, validateRuleContent(&r))

	r.Template = "Hello {name, balance {x}"
	err := validateRuleContent(&r)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTemplate, ve.Kind)
	assert.Contains(t, ve.Message, "unbalanced placeholders")
}

func TestRuleTemplateCheckIsLexicalOnly(t *testing.T) {
	t.Parallel()

	// Totals match even though order is nonsense; the check is on counts.
	r := validRule(t)
	r.Template = "}backwards{"
	assert.NoError(t, validateRuleContent(&r))
}

func TestSQLInjectionHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sql       string
		dangerous bool
	}{
		{"plain column list", "field1, field2", false},
		{"select from", "SELECT * FROM users", true},
		{"lowercase drop", "drop table accounts where 1=1", true},
		{"keyword without clause", "the select committee", false},
		{"comment token", "value -- hidden", true},
		{"block comment", "val /* x */", true},
		{"extended proc", "xp_cmdshell", true},
		{"union join", "UNION JOIN something", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.dangerous, LooksDangerous(tc.sql))
		})
	}
}

func TestSuspiciousSemicolon(t *testing.T) {
	t.Parallel()

	assert.False(t, SuspiciousSemicolon("no semicolon"))
	assert.False(t, SuspiciousSemicolon("trailing is fine;"))
	assert.True(t, SuspiciousSemicolon("field1; extra"))
}

func TestRuleSQLComponentMessages(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.SQLPart = "field1; DROP TABLE"
	err := validateRuleContent(&r)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindSQL, ve.Kind)
	assert.Equal(t, "sqlPart contains suspicious semicolon usage", ve.Message)

	r = validRule(t)
	r.SQLStr = "DELETE FROM trades"
	err = validateRuleContent(&r)
	require.Error(t, err)
	assert.Equal(t, "sqlStr contains potentially dangerous SQL patterns", err.Error())
}
