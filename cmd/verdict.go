package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var verdictRows bool

var verdictCmd = &cobra.Command{
	Use:   "verdict <case_id>",
	Short: "Print the slow-heating assessment of a case",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerdict,
}

func init() {
	verdictCmd.Flags().BoolVar(&verdictRows, "rows", false, "also print the rendered snapshot rows")
	rootCmd.AddCommand(verdictCmd)
}

func runVerdict(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	review, err := a.services.Reviewer.Review(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("review case %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "case %s (%s, %s) status=%s\n",
		review.Case.CaseID, review.Case.SystemName, review.Case.BodyType, review.Case.Status)
	fmt.Fprintf(out, "slow heating: %t\n", review.SlowHeatingDetected)
	if review.Banner != "" {
		fmt.Fprintln(out, review.Banner)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(review.Assessment); err != nil {
		return err
	}
	if verdictRows {
		for _, r := range review.Rows {
			mark := " "
			if r.Highlight {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %-22s air=%-6s temp=%-6s set=%-6s heater=%-13s pump=%s\n",
				mark, r.Time, r.Air, r.Temp, r.SetPoint, r.Heater, r.Pump)
		}
	}
	return nil
}
