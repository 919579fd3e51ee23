// Package score provides derived, read-only views over reference-data
// records: a trade risk score and a rule complexity level. Neither has any
// validation effect, and both may run on records that have not been through
// the save pipeline.
package score

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/refdata/record"
)

const MaxRisk = 7

var (
	notionalHigh = decimal.NewFromInt(1_000_000)
	notionalMid  = decimal.NewFromInt(100_000)
)

// complexTypes are matched as case-insensitive substrings of the trade type.
var complexTypes = []string{"SWAP", "OPTION", "DERIVATIVE"}

// Risk scores a trade from 0 to 7: notional tier, complex instrument type,
// missing benchmark, and a non-pending status each add points.
func Risk(t record.TradeRecord) int {
	score := 0

	total := t.TotalNotional()
	switch {
	case total.GreaterThan(notionalHigh):
		score += 3
	case total.GreaterThan(notionalMid):
		score++
	}

	typ := strings.ToUpper(t.Type)
	for _, ct := range complexTypes {
		if strings.Contains(typ, ct) {
			score += 2
			break
		}
	}

	if strings.TrimSpace(t.Benchmark) == "" {
		score++
	}

	if status := strings.ToUpper(strings.TrimSpace(t.Status)); status != "" && status != "PENDING" {
		score++
	}

	if score > MaxRisk {
		score = MaxRisk
	}
	return score
}
