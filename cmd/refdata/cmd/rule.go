package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/refdata/record"
	"github.com/rustyeddy/refdata/score"
)

var ruleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Manage business rules",
	Long: `Create, update, list and delete business rule records.

Examples:
  refdata rule add --name limit-check --description "Position limit check"
  refdata rule add --name tpl-rule --template "Alert for {account}" --json '{"max":10}'
  refdata rule complexity <id>
  refdata rule ls`,
}

var ruleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a rule",
	Args:  cobra.NoArgs,
	RunE:  runRuleAdd,
}

var ruleUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuleUpdate,
}

var ruleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuleRm,
}

var ruleLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List rules",
	Args:  cobra.NoArgs,
	RunE:  runRuleLs,
}

var ruleComplexityCmd = &cobra.Command{
	Use:   "complexity <id>",
	Short: "Show the derived complexity level for a rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuleComplexity,
}

var ruleFlags struct {
	name, description string
	json, template    string
	sqlStr, sqlPart   string
}

func init() {
	rootCmd.AddCommand(ruleCmd)
	ruleCmd.AddCommand(ruleAddCmd)
	ruleCmd.AddCommand(ruleUpdateCmd)
	ruleCmd.AddCommand(ruleRmCmd)
	ruleCmd.AddCommand(ruleLsCmd)
	ruleCmd.AddCommand(ruleComplexityCmd)

	for _, c := range []*cobra.Command{ruleAddCmd, ruleUpdateCmd} {
		c.Flags().StringVar(&ruleFlags.name, "name", "", "rule name (natural key)")
		c.Flags().StringVar(&ruleFlags.description, "description", "", "description")
		c.Flags().StringVar(&ruleFlags.json, "json", "", "JSON configuration")
		c.Flags().StringVar(&ruleFlags.template, "template", "", "message template")
		c.Flags().StringVar(&ruleFlags.sqlStr, "sql", "", "SQL string component")
		c.Flags().StringVar(&ruleFlags.sqlPart, "sql-part", "", "SQL part component")
	}
}

func runRuleAdd(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	r := record.RuleRecord{
		Name:        ruleFlags.name,
		Description: ruleFlags.description,
		JSON:        ruleFlags.json,
		Template:    ruleFlags.template,
		SQLStr:      ruleFlags.sqlStr,
		SQLPart:     ruleFlags.sqlPart,
	}

	saved, err := e.svc.SaveRule(cmd.Context(), r)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Created rule %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runRuleUpdate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	r, err := e.svc.GetRule(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if ruleFlags.name != "" {
		r.Name = ruleFlags.name
	}
	if ruleFlags.description != "" {
		r.Description = ruleFlags.description
	}
	if ruleFlags.json != "" {
		r.JSON = ruleFlags.json
	}
	if ruleFlags.template != "" {
		r.Template = ruleFlags.template
	}
	if ruleFlags.sqlStr != "" {
		r.SQLStr = ruleFlags.sqlStr
	}
	if ruleFlags.sqlPart != "" {
		r.SQLPart = ruleFlags.sqlPart
	}

	saved, err := e.svc.SaveRule(cmd.Context(), r)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated rule %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runRuleRm(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.svc.DeleteRule(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted rule %s\n", args[0])
	return nil
}

func runRuleLs(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	rules, err := e.svc.ListRules(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%-26s  %-30s  %-12s  %s\n", "ID", "NAME", "COMPLEXITY", "DESCRIPTION")
	for _, r := range rules {
		fmt.Printf("%-26s  %-30s  %-12s  %s\n", r.ID, r.Name, score.Complexity(r), r.Description)
	}
	return nil
}

func runRuleComplexity(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	r, err := e.svc.GetRule(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Rule %s complexity: %s\n", r.Name, score.Complexity(r))
	return nil
}
