package validate

import "github.com/shopspring/decimal"

// Config holds the engine thresholds. Build it once and share it across
// pipeline invocations; it is never mutated after construction.
type Config struct {
	// MaxLegNotional caps quantity × price for a single trade leg.
	MaxLegNotional decimal.Decimal
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MaxLegNotional: decimal.NewFromInt(10_000_000),
	}
}
