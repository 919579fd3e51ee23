package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/refdata/record"
)

func TestTradeAccountRequired(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.Account = "  "

	err := validateTradeFields(&tr)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindRequired, ve.Kind)
	assert.Equal(t, "Account is required", ve.Message)
}

func TestTradeTypeRequired(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.Type = ""

	err := validateTradeFields(&tr)
	require.Error(t, err)
	assert.Equal(t, "Type is required", err.Error())
}

func TestTradeAccountLengthBoundary(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.Account = "A" + strings.Repeat("0", 29) // exactly 30
	assert.NoError(t, validateTradeFields(&tr))

	tr.Account = "A" + strings.Repeat("0", 30) // 31
	err := validateTradeFields(&tr)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindLength, ve.Kind)
	assert.Equal(t, "Account cannot exceed 30 characters", ve.Message)
}

func TestTradeAccountPattern(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.Account = "abc123"

	err := validateTradeFields(&tr)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindPattern, ve.Kind)
	assert.Contains(t, ve.Message, "must start with alphanumeric")
	assert.Contains(t, ve.Message, "uppercase")
}

func TestTradeFreeTextLengthBoundary(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.Trader = longString(125)
	assert.NoError(t, validateTradeFields(&tr))

	tr.Trader = longString(126)
	err := validateTradeFields(&tr)
	require.Error(t, err)
	assert.Equal(t, "Trader cannot exceed 125 characters", err.Error())
}

func TestTradeLegPositivity(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.BuyQuantity = dec(t, "0")

	err := validateTradeFields(&tr)
	require.Error(t, err)

	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNumeric, ve.Kind)
	assert.Equal(t, "Buy quantity must be positive", ve.Message)

	tr = validTrade(t)
	tr.SellQuantity = dec(t, "-5")
	tr.SellPrice = dec(t, "10")
	err = validateTradeFields(&tr)
	require.Error(t, err)
	assert.Equal(t, "Sell quantity must be positive", err.Error())
}

func TestTradeLegPairing(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.BuyPrice = nil // quantity without price

	err := validateTradeFields(&tr)
	require.Error(t, err)
	assert.Equal(t, "Buy quantity and buy price must be provided together", err.Error())
}

func TestTradeNeedsAtLeastOneLeg(t *testing.T) {
	t.Parallel()

	tr := validTrade(t)
	tr.BuyQuantity, tr.BuyPrice = nil, nil
	tr.Side = ""

	err := validateTradeFields(&tr)
	require.Error(t, err)
	assert.Equal(t, "At least one buy or sell operation must be specified", err.Error())
}

func TestRuleNameChecks(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.Name = ""
	err := validateRuleFields(&r)
	require.Error(t, err)
	assert.Equal(t, "Rule name is required", err.Error())

	r = validRule(t)
	r.Name = longString(125)
	assert.NoError(t, validateRuleFields(&r))

	r.Name = longString(126)
	err = validateRuleFields(&r)
	require.Error(t, err)
	assert.Equal(t, "Rule name cannot exceed 125 characters", err.Error())

	r = validRule(t)
	r.Name = "-starts-with-hyphen"
	err = validateRuleFields(&r)
	require.Error(t, err)
	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindPattern, ve.Kind)
}

func TestRuleDescriptionBoundary(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.Description = longString(125)
	assert.NoError(t, validateRuleFields(&r))

	r.Description = longString(126)
	err := validateRuleFields(&r)
	require.Error(t, err)
	assert.Equal(t, "Description cannot exceed 125 characters", err.Error())
}

func TestRuleTemplateLength(t *testing.T) {
	t.Parallel()

	r := validRule(t)
	r.Template = longString(512)
	assert.NoError(t, validateRuleFields(&r))

	r.Template = longString(513)
	err := validateRuleFields(&r)
	require.Error(t, err)
	assert.Equal(t, "Template cannot exceed 512 characters", err.Error())
}

func TestRatingNeedsAtLeastOneGrade(t *testing.T) {
	t.Parallel()

	r := record.RatingRecord{}
	err := validateRatingFields(&r)
	require.Error(t, err)
	assert.Equal(t, "At least one rating is required", err.Error())
}

func TestRatingGradePatterns(t *testing.T) {
	t.Parallel()

	r := record.RatingRecord{MoodysRating: "Baa3"}
	assert.NoError(t, validateRatingFields(&r))

	r = record.RatingRecord{MoodysRating: "BBB"} // letter scale, not Moody's
	err := validateRatingFields(&r)
	require.Error(t, err)
	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindPattern, ve.Kind)

	r = record.RatingRecord{SandPRating: "BB+"}
	assert.NoError(t, validateRatingFields(&r))

	r = record.RatingRecord{FitchRating: "bbb"}
	assert.Error(t, validateRatingFields(&r))
}

func TestRatingOrderNumberMustBePositive(t *testing.T) {
	t.Parallel()

	r := record.RatingRecord{MoodysRating: "Aaa", OrderNumber: -1}
	err := validateRatingFields(&r)
	require.Error(t, err)
	assert.Equal(t, "Order number must be positive", err.Error())
}
