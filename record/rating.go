package record

// RatingRecord holds one cross-agency credit rating notation. At least one
// agency grade must be present. OrderNumber ranks notations from best to
// worst credit quality; 0 means unassigned.
type RatingRecord struct {
	ID string

	MoodysRating string
	SandPRating  string
	FitchRating  string

	OrderNumber int
}

// HasAny reports whether at least one agency grade is present.
func (r *RatingRecord) HasAny() bool {
	return r.MoodysRating != "" || r.SandPRating != "" || r.FitchRating != ""
}

// InvestmentGrade reports whether at least one present agency grade falls in
// that agency's investment band.
func (r *RatingRecord) InvestmentGrade() bool {
	return moodysInvestment[r.MoodysRating] ||
		letterInvestment[r.SandPRating] ||
		letterInvestment[r.FitchRating]
}

// SpeculativeGrade reports whether at least one present agency grade falls
// below its agency's investment band.
func (r *RatingRecord) SpeculativeGrade() bool {
	if g := r.MoodysRating; g != "" && !moodysInvestment[g] {
		return true
	}
	if g := r.SandPRating; g != "" && !letterInvestment[g] {
		return true
	}
	if g := r.FitchRating; g != "" && !letterInvestment[g] {
		return true
	}
	return false
}

// Moody's investment band runs Aaa..Baa3.
var moodysInvestment = map[string]bool{
	"Aaa": true,
	"Aa1": true, "Aa2": true, "Aa3": true,
	"A1": true, "A2": true, "A3": true,
	"Baa1": true, "Baa2": true, "Baa3": true,
}

// S&P and Fitch share the letter scale; investment band runs AAA..BBB-.
var letterInvestment = map[string]bool{
	"AAA": true,
	"AA+": true, "AA": true, "AA-": true,
	"A+": true, "A": true, "A-": true,
	"BBB+": true, "BBB": true, "BBB-": true,
}
