package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/tools"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the trip budget report",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		return printResult(cmd, b.TotalBudget(cmd.Context()))
	},
}

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		res := b.GetExpenseSummary(cmd.Context())
		if !summaryJSON {
			return printResult(cmd, res)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		if er, ok := res.(*tools.ErrorResult); ok {
			return er
		}
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		return printResult(cmd, b.ClearAllExpenses(cmd.Context()))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses in the order they were added",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		expenses, err := b.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(expenses) == 0 {
			fmt.Fprintln(out, "No expenses found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
		for _, e := range expenses {
			date := "-"
			if !e.CreatedAt.IsZero() {
				date = e.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, date, e.Category, ledger.FormatMoney(e.Amount), e.Description)
		}
		return w.Flush()
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print the structured result as JSON")

	rootCmd.AddCommand(budgetCmd, summaryCmd, clearCmd, listCmd)
}
