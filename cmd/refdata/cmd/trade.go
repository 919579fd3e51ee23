package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/refdata/record"
	"github.com/rustyeddy/refdata/score"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Manage trade records",
	Long: `Create, update, list and delete trade records.

Examples:
  refdata trade add --account ACC-1 --type BOND --buy-qty 100 --buy-price 98.5
  refdata trade update <id> --status EXECUTED
  refdata trade score <id>
  refdata trade ls`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeUpdate,
}

var tradeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeRm,
}

var tradeLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeLs,
}

var tradeScoreCmd = &cobra.Command{
	Use:   "score <id>",
	Short: "Show the derived risk score for a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeScore,
}

var tradeFlags struct {
	account, typ, side, status   string
	trader, benchmark, book      string
	security, dealName, dealType string
	buyQty, buyPrice             string
	sellQty, sellPrice           string
	tradeDate                    string
}

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeUpdateCmd)
	tradeCmd.AddCommand(tradeRmCmd)
	tradeCmd.AddCommand(tradeLsCmd)
	tradeCmd.AddCommand(tradeScoreCmd)

	for _, c := range []*cobra.Command{tradeAddCmd, tradeUpdateCmd} {
		c.Flags().StringVar(&tradeFlags.account, "account", "", "account code")
		c.Flags().StringVar(&tradeFlags.typ, "type", "", "trade type code")
		c.Flags().StringVar(&tradeFlags.side, "side", "", "trade side (BUY/SELL)")
		c.Flags().StringVar(&tradeFlags.status, "status", "", "trade status")
		c.Flags().StringVar(&tradeFlags.trader, "trader", "", "trader name")
		c.Flags().StringVar(&tradeFlags.benchmark, "benchmark", "", "benchmark")
		c.Flags().StringVar(&tradeFlags.book, "book", "", "book")
		c.Flags().StringVar(&tradeFlags.security, "security", "", "security")
		c.Flags().StringVar(&tradeFlags.dealName, "deal-name", "", "deal name")
		c.Flags().StringVar(&tradeFlags.dealType, "deal-type", "", "deal type")
		c.Flags().StringVar(&tradeFlags.buyQty, "buy-qty", "", "buy quantity")
		c.Flags().StringVar(&tradeFlags.buyPrice, "buy-price", "", "buy price")
		c.Flags().StringVar(&tradeFlags.sellQty, "sell-qty", "", "sell quantity")
		c.Flags().StringVar(&tradeFlags.sellPrice, "sell-price", "", "sell price")
		c.Flags().StringVar(&tradeFlags.tradeDate, "trade-date", "", "trade date (YYYY-MM-DD)")
	}
}

func tradeFromFlags(base record.TradeRecord) (record.TradeRecord, error) {
	t := base
	t.Account = tradeFlags.account
	t.Type = tradeFlags.typ
	t.Side = tradeFlags.side
	t.Status = tradeFlags.status
	t.Trader = tradeFlags.trader
	t.Benchmark = tradeFlags.benchmark
	t.Book = tradeFlags.book
	t.Security = tradeFlags.security
	t.DealName = tradeFlags.dealName
	t.DealType = tradeFlags.dealType

	var err error
	if t.BuyQuantity, err = parseDec("buy-qty", tradeFlags.buyQty); err != nil {
		return t, err
	}
	if t.BuyPrice, err = parseDec("buy-price", tradeFlags.buyPrice); err != nil {
		return t, err
	}
	if t.SellQuantity, err = parseDec("sell-qty", tradeFlags.sellQty); err != nil {
		return t, err
	}
	if t.SellPrice, err = parseDec("sell-price", tradeFlags.sellPrice); err != nil {
		return t, err
	}

	if tradeFlags.tradeDate != "" {
		d, err := time.Parse("2006-01-02", tradeFlags.tradeDate)
		if err != nil {
			return t, fmt.Errorf("trade-date: %w", err)
		}
		t.TradeDate = &d
	}
	return t, nil
}

func parseDec(flag, v string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flag, err)
	}
	return &d, nil
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	t, err := tradeFromFlags(record.TradeRecord{})
	if err != nil {
		return err
	}

	saved, err := e.svc.SaveTrade(cmd.Context(), t)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Created trade %s (%s %s)\n", saved.ID, saved.Account, saved.Type)
	return nil
}

func runTradeUpdate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	existing, err := e.svc.GetTrade(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	t, err := tradeFromFlags(existing)
	if err != nil {
		return err
	}
	// Keep stored values for flags the caller did not pass.
	mergeTradeUnset(&t, existing)

	saved, err := e.svc.SaveTrade(cmd.Context(), t)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated trade %s\n", saved.ID)
	return nil
}

func mergeTradeUnset(t *record.TradeRecord, existing record.TradeRecord) {
	if tradeFlags.account == "" {
		t.Account = existing.Account
	}
	if tradeFlags.typ == "" {
		t.Type = existing.Type
	}
	if tradeFlags.side == "" {
		t.Side = existing.Side
	}
	if tradeFlags.status == "" {
		t.Status = existing.Status
	}
	if tradeFlags.trader == "" {
		t.Trader = existing.Trader
	}
	if tradeFlags.benchmark == "" {
		t.Benchmark = existing.Benchmark
	}
	if tradeFlags.book == "" {
		t.Book = existing.Book
	}
	if tradeFlags.security == "" {
		t.Security = existing.Security
	}
	if tradeFlags.dealName == "" {
		t.DealName = existing.DealName
	}
	if tradeFlags.dealType == "" {
		t.DealType = existing.DealType
	}
	if tradeFlags.buyQty == "" {
		t.BuyQuantity = existing.BuyQuantity
	}
	if tradeFlags.buyPrice == "" {
		t.BuyPrice = existing.BuyPrice
	}
	if tradeFlags.sellQty == "" {
		t.SellQuantity = existing.SellQuantity
	}
	if tradeFlags.sellPrice == "" {
		t.SellPrice = existing.SellPrice
	}
	if tradeFlags.tradeDate == "" {
		t.TradeDate = existing.TradeDate
	}
}

func runTradeRm(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.svc.DeleteTrade(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted trade %s\n", args[0])
	return nil
}

func runTradeLs(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	trades, err := e.svc.ListTrades(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%-26s  %-12s  %-10s  %-6s  %-10s  %12s\n",
		"ID", "ACCOUNT", "TYPE", "SIDE", "STATUS", "NOTIONAL")
	for _, t := range trades {
		fmt.Printf("%-26s  %-12s  %-10s  %-6s  %-10s  %12s\n",
			t.ID, t.Account, t.Type, t.Side, t.Status, t.TotalNotional().StringFixed(2))
	}
	return nil
}

func runTradeScore(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	t, err := e.svc.GetTrade(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Trade %s risk score: %d/%d\n", t.ID, score.Risk(t), score.MaxRisk)
	return nil
}
