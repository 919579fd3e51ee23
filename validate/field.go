package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/refdata/record"
)

const (
	maxCodeLen     = 30
	maxTextLen     = 125
	maxTemplateLen = 512
)

func required(field, display, value string) *Error {
	if strings.TrimSpace(value) == "" {
		return fail(KindRequired, field, display+" is required")
	}
	return nil
}

func maxLen(field, display, value string, limit int) *Error {
	if utf8.RuneCountInString(value) > limit {
		return fail(KindLength, field, fmt.Sprintf("%s cannot exceed %d characters", display, limit))
	}
	return nil
}

func matches(field, rule, value string) *Error {
	if ok, msg := conforms(rule, value); !ok {
		return fail(KindPattern, field, msg)
	}
	return nil
}

func positive(field, display string, v *decimal.Decimal) *Error {
	if v != nil && !v.IsPositive() {
		return fail(KindNumeric, field, display+" must be positive")
	}
	return nil
}

// validateTradeFields runs required-ness, length, numeric and pattern checks
// on a candidate trade. First failure wins.
func validateTradeFields(t *record.TradeRecord) error {
	if err := required("account", "Account", t.Account); err != nil {
		return err
	}
	if err := maxLen("account", "Account", t.Account, maxCodeLen); err != nil {
		return err
	}
	if err := matches("account", "account", t.Account); err != nil {
		return err
	}

	if err := required("type", "Type", t.Type); err != nil {
		return err
	}
	if err := maxLen("type", "Type", t.Type, maxCodeLen); err != nil {
		return err
	}
	if err := matches("type", "type", t.Type); err != nil {
		return err
	}

	if err := validateLeg("buy", "Buy", t.BuyQuantity, t.BuyPrice); err != nil {
		return err
	}
	if err := validateLeg("sell", "Sell", t.SellQuantity, t.SellPrice); err != nil {
		return err
	}
	if !t.HasBuyLeg() && !t.HasSellLeg() {
		return fail(KindNumeric, "quantity", "At least one buy or sell operation must be specified")
	}

	for _, f := range []struct {
		field, display, value string
	}{
		{"side", "Side", t.Side},
		{"status", "Status", t.Status},
		{"trader", "Trader", t.Trader},
		{"benchmark", "Benchmark", t.Benchmark},
		{"book", "Book", t.Book},
		{"security", "Security", t.Security},
		{"creationName", "Creation name", t.CreationName},
		{"revisionName", "Revision name", t.RevisionName},
		{"dealName", "Deal name", t.DealName},
		{"dealType", "Deal type", t.DealType},
		{"sourceListId", "Source list id", t.SourceListID},
	} {
		if err := maxLen(f.field, f.display, f.value, maxTextLen); err != nil {
			return err
		}
	}
	return nil
}

// validateLeg enforces that quantity and price come as a pair and are
// strictly positive when present.
func validateLeg(side, display string, qty, price *decimal.Decimal) error {
	if err := positive(side+"Quantity", display+" quantity", qty); err != nil {
		return err
	}
	if err := positive(side+"Price", display+" price", price); err != nil {
		return err
	}
	if (qty == nil) != (price == nil) {
		return fail(KindNumeric, side+"Quantity",
			fmt.Sprintf("%s quantity and %s price must be provided together", display, strings.ToLower(display)))
	}
	return nil
}

func validateRuleFields(r *record.RuleRecord) error {
	if err := required("name", "Rule name", r.Name); err != nil {
		return err
	}
	if err := maxLen("name", "Rule name", r.Name, maxTextLen); err != nil {
		return err
	}
	if err := matches("name", "ruleName", r.Name); err != nil {
		return err
	}
	if err := maxLen("description", "Description", r.Description, maxTextLen); err != nil {
		return err
	}
	if err := maxLen("json", "JSON configuration", r.JSON, maxTextLen); err != nil {
		return err
	}
	if err := maxLen("template", "Template", r.Template, maxTemplateLen); err != nil {
		return err
	}
	if err := maxLen("sqlStr", "SQL string", r.SQLStr, maxTextLen); err != nil {
		return err
	}
	if err := maxLen("sqlPart", "SQL part", r.SQLPart, maxTextLen); err != nil {
		return err
	}
	return nil
}

func validateRatingFields(r *record.RatingRecord) error {
	if !r.HasAny() {
		return fail(KindRequired, "rating", "At least one rating is required")
	}
	if r.MoodysRating != "" {
		if err := matches("moodysRating", "moodys", r.MoodysRating); err != nil {
			return err
		}
	}
	if r.SandPRating != "" {
		if err := matches("sandPRating", "letterGrade", r.SandPRating); err != nil {
			return err
		}
	}
	if r.FitchRating != "" {
		if err := matches("fitchRating", "letterGrade", r.FitchRating); err != nil {
			return err
		}
	}
	if r.OrderNumber < 0 {
		return fail(KindNumeric, "orderNumber", "Order number must be positive")
	}
	return nil
}
