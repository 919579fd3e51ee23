package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rustyeddy/refdata/admin"
	"github.com/rustyeddy/refdata/config"
	"github.com/rustyeddy/refdata/store"
	"github.com/rustyeddy/refdata/validate"
)

var rootCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Administer trading reference data",
	Long: `Refdata is an internal administration tool for trading reference data.

It manages trades, business rules and credit ratings through validated
save operations:
  - Pattern-based field validation and normalization
  - Structured-content safety checks (JSON, templates, SQL components)
  - Cross-field consistency rules and uniqueness enforcement
  - Derived trade risk scores and rule complexity levels`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (defaults used when omitted)")
}

// env is the wired-up tool: store, pipeline and service built from config.
type env struct {
	cfg *config.Config
	log *zap.Logger
	st  *store.Store
	svc *admin.Service
}

func (e *env) close() {
	_ = e.log.Sync()
	_ = e.st.Close()
}

func setup() (*env, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
	}

	log, err := buildLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	engineCfg := validate.Config{
		MaxLegNotional: decimal.NewFromFloat(cfg.Limits.MaxLegNotional),
	}
	pipe := validate.New(engineCfg, log, st, st)

	return &env{
		cfg: cfg,
		log: log,
		st:  st,
		svc: admin.New(st, pipe, log),
	}, nil
}

func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
