package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simonvc/tripbudget/internal/tools"
)

var (
	toolsCall string
	toolsArgs string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the agent tools, or call one by name",
	Example: `  tripbudget tools
  tripbudget tools --call transport_cost --args '{"distance_km": 300, "transport_type": "train"}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		out := cmd.OutOrStdout()
		if toolsCall == "" {
			defs, err := b.Definitions(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TOOL\tDESCRIPTION")
			for _, d := range defs {
				if d.Function == nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", d.Function.Name, d.Function.Description)
			}
			return w.Flush()
		}

		if toolsArgs != "" && !json.Valid([]byte(toolsArgs)) {
			return fmt.Errorf("--args is not valid JSON")
		}

		inv, err := b.Call(cmd.Context(), toolsCall, json.RawMessage(toolsArgs))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(inv); err != nil {
			return err
		}
		if er, ok := inv.Result.(*tools.ErrorResult); ok {
			return er
		}
		return nil
	},
}

func init() {
	toolsCmd.Flags().StringVar(&toolsCall, "call", "", "Tool to call")
	toolsCmd.Flags().StringVar(&toolsArgs, "args", "", "Tool arguments as a JSON object")

	rootCmd.AddCommand(toolsCmd)
}
