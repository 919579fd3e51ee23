package record

// RuleRecord is a business rule definition. Name is the natural key. The
// JSON, Template and SQL fields are opaque payloads used by downstream
// systems; the engine only sanity-checks their syntax.
type RuleRecord struct {
	ID string

	Name        string
	Description string

	JSON     string
	Template string
	SQLStr   string
	SQLPart  string
}

// HasJSON reports whether a JSON configuration is present.
func (r *RuleRecord) HasJSON() bool { return r.JSON != "" }

// HasTemplate reports whether a template is present.
func (r *RuleRecord) HasTemplate() bool { return r.Template != "" }

// HasSQL reports whether either SQL component is present.
func (r *RuleRecord) HasSQL() bool { return r.SQLStr != "" || r.SQLPart != "" }
