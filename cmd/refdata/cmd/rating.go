package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/refdata/record"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Manage credit rating notations",
	Long: `Create, update, list and delete credit rating records.

Order numbers rank notations from best to worst credit quality and are
assigned automatically when omitted.

Examples:
  refdata rating add --moodys Aaa --sandp AAA --fitch AAA
  refdata rating add --moodys Baa3 --sandp BBB- --order 10
  refdata rating ls`,
}

var ratingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a rating",
	Args:  cobra.NoArgs,
	RunE:  runRatingAdd,
}

var ratingUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runRatingUpdate,
}

var ratingRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runRatingRm,
}

var ratingLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List ratings ranked by order number",
	Args:  cobra.NoArgs,
	RunE:  runRatingLs,
}

var ratingFlags struct {
	moodys, sandP, fitch string
	order                int
}

func init() {
	rootCmd.AddCommand(ratingCmd)
	ratingCmd.AddCommand(ratingAddCmd)
	ratingCmd.AddCommand(ratingUpdateCmd)
	ratingCmd.AddCommand(ratingRmCmd)
	ratingCmd.AddCommand(ratingLsCmd)

	for _, c := range []*cobra.Command{ratingAddCmd, ratingUpdateCmd} {
		c.Flags().StringVar(&ratingFlags.moodys, "moodys", "", "Moody's grade (e.g. Baa3)")
		c.Flags().StringVar(&ratingFlags.sandP, "sandp", "", "S&P grade (e.g. BBB-)")
		c.Flags().StringVar(&ratingFlags.fitch, "fitch", "", "Fitch grade (e.g. BBB-)")
		c.Flags().IntVar(&ratingFlags.order, "order", 0, "order number (auto-assigned when omitted)")
	}
}

func runRatingAdd(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	r := record.RatingRecord{
		MoodysRating: ratingFlags.moodys,
		SandPRating:  ratingFlags.sandP,
		FitchRating:  ratingFlags.fitch,
		OrderNumber:  ratingFlags.order,
	}

	saved, err := e.svc.SaveRating(cmd.Context(), r)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Created rating %s (order %d)\n", saved.ID, saved.OrderNumber)
	return nil
}

func runRatingUpdate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	r, err := e.svc.GetRating(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if ratingFlags.moodys != "" {
		r.MoodysRating = ratingFlags.moodys
	}
	if ratingFlags.sandP != "" {
		r.SandPRating = ratingFlags.sandP
	}
	if ratingFlags.fitch != "" {
		r.FitchRating = ratingFlags.fitch
	}
	if ratingFlags.order != 0 {
		r.OrderNumber = ratingFlags.order
	}

	saved, err := e.svc.SaveRating(cmd.Context(), r)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated rating %s (order %d)\n", saved.ID, saved.OrderNumber)
	return nil
}

func runRatingRm(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.svc.DeleteRating(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted rating %s\n", args[0])
	return nil
}

func runRatingLs(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	ratings, err := e.svc.ListRatings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%-5s  %-26s  %-8s  %-8s  %-8s  %s\n",
		"ORDER", "ID", "MOODYS", "S&P", "FITCH", "GRADE")
	for _, r := range ratings {
		grade := "speculative"
		if r.InvestmentGrade() {
			grade = "investment"
		}
		fmt.Printf("%-5d  %-26s  %-8s  %-8s  %-8s  %s\n",
			r.OrderNumber, r.ID, r.MoodysRating, r.SandPRating, r.FitchRating, grade)
	}
	return nil
}
