package score

import "github.com/rustyeddy/refdata/record"

// Level buckets a rule by how many payload kinds it carries.
type Level string

const (
	Basic        Level = "BASIC"
	Intermediate Level = "INTERMEDIATE"
	Advanced     Level = "ADVANCED"
	Expert       Level = "EXPERT"
)

// Complexity counts the present payloads (JSON config, template, SQL
// components) and maps 0..3 onto the four levels.
func Complexity(r record.RuleRecord) Level {
	n := 0
	if r.HasJSON() {
		n++
	}
	if r.HasTemplate() {
		n++
	}
	if r.HasSQL() {
		n++
	}
	switch n {
	case 0:
		return Basic
	case 1:
		return Intermediate
	case 2:
		return Advanced
	default:
		return Expert
	}
}
