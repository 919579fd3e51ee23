package validate

import (
	"encoding/json"
	"strings"

	"github.com/rustyeddy/refdata/record"
)

// validateRuleContent sanity-checks the opaque payload fields of a rule:
// JSON must parse, template braces must balance, SQL components must pass
// the injection heuristics. None of the payloads is ever executed here.
func validateRuleContent(r *record.RuleRecord) error {
	if r.HasJSON() {
		var v any
		if err := json.Unmarshal([]byte(r.JSON), &v); err != nil {
			return fail(KindJSON, "json", "Invalid JSON configuration: "+err.Error())
		}
	}

	if r.HasTemplate() {
		opens := strings.Count(r.Template, "{")
		closes := strings.Count(r.Template, "}")
		if opens != closes {
			return fail(KindTemplate, "template", "Template has unbalanced placeholders (mismatched braces)")
		}
	}

	if err := validateSQLComponent("sqlStr", r.SQLStr); err != nil {
		return err
	}
	return validateSQLComponent("sqlPart", r.SQLPart)
}

func validateSQLComponent(field, sql string) error {
	if sql == "" {
		return nil
	}
	if LooksDangerous(sql) {
		return fail(KindSQL, field, field+" contains potentially dangerous SQL patterns")
	}
	if SuspiciousSemicolon(sql) {
		return fail(KindSQL, field, field+" contains suspicious semicolon usage")
	}
	return nil
}
