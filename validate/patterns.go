package validate

import (
	"regexp"
	"strings"
)

// pattern pairs a compiled matcher with the message shown when a value does
// not conform. All patterns are compiled once at package init; the maps are
// read-only after that.
type pattern struct {
	re      *regexp.Regexp
	message string
}

var formatPatterns = map[string]pattern{
	"account": {
		re:      regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]*$`),
		message: "Account must start with alphanumeric and may contain only uppercase letters, digits, underscores and hyphens",
	},
	"type": {
		re:      regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`),
		message: "Type must start with an uppercase letter and may contain only uppercase letters, digits and underscores",
	},
	"ruleName": {
		re:      regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_\-.]*$`),
		message: "Rule name must start with alphanumeric and may contain only letters, digits, underscores, hyphens and dots",
	},
	"moodys": {
		re:      regexp.MustCompile(`^(Aaa|Aa[1-3]|A[1-3]|Baa[1-3]|Ba[1-3]|B[1-3]|Caa[1-3]|Ca|C)$`),
		message: "Moody's rating must be a valid grade on the Moody's scale (Aaa through C)",
	},
	"letterGrade": {
		re:      regexp.MustCompile(`^(AAA|AA[+-]?|A[+-]?|BBB[+-]?|BB[+-]?|B[+-]?|CCC[+-]?|CC|C|D)$`),
		message: "rating must be a valid grade on the letter scale (AAA through D)",
	},
}

// conforms checks value against the named format pattern. It returns the
// pattern's failure message when the value does not match.
func conforms(name, value string) (ok bool, message string) {
	p, found := formatPatterns[name]
	if !found {
		return false, "unknown format rule: " + name
	}
	if p.re.MatchString(value) {
		return true, ""
	}
	return false, p.message
}

// SQL heuristics. These are pattern matchers, not a parser: a DDL/DML
// keyword co-occurring with a clause keyword, or classic injection tokens.
// Swap this capability for a real parser or allow-list without touching
// callers.
var (
	sqlStatementRe = regexp.MustCompile(`(?i)\b(ALTER|CREATE|DELETE|DROP|EXEC(UTE)?|INSERT|SELECT|UNION|UPDATE)\b`)
	sqlClauseRe    = regexp.MustCompile(`(?i)\b(FROM|INTO|SET|WHERE|JOIN)\b`)
)

var sqlTokens = []string{"--", "/*", "*/", "xp_", "sp_"}

// LooksDangerous reports whether sql trips the injection heuristic. False
// positives and negatives are accepted; the fields are never executed here.
func LooksDangerous(sql string) bool {
	if sqlStatementRe.MatchString(sql) && sqlClauseRe.MatchString(sql) {
		return true
	}
	lower := strings.ToLower(sql)
	for _, tok := range sqlTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// SuspiciousSemicolon reports whether sql contains a semicolon anywhere
// except as the final character.
func SuspiciousSemicolon(sql string) bool {
	i := strings.IndexByte(sql, ';')
	return i >= 0 && i != len(sql)-1
}
