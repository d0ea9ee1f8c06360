package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonvc/tripbudget/internal/tools"
)

// food
var (
	foodDays   int64
	foodPerDay int64
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Record the food cost of the trip (days × cost per day)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		return printResult(cmd, b.FoodCost(cmd.Context(), foodDays, foodPerDay))
	},
}

// hotel
var (
	hotelNights   int64
	hotelPerNight int64
)

var hotelCmd = &cobra.Command{
	Use:   "hotel",
	Short: "Record the hotel cost of the trip (nights × price per night)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		return printResult(cmd, b.HotelCost(cmd.Context(), hotelNights, hotelPerNight))
	},
}

// transport
var (
	transportKM   int64
	transportType string
)

var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Record a journey priced per km (bus 2, train 1.5, cab 10, flight 6)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		return printResult(cmd, b.TransportCost(cmd.Context(), transportKM, transportType))
	},
}

// printResult writes a successful result and turns a failed one into the
// command's error, so the process exits non-zero.
func printResult(cmd *cobra.Command, res tools.Result) error {
	if er, ok := res.(*tools.ErrorResult); ok {
		return er
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}

func init() {
	foodCmd.Flags().Int64Var(&foodDays, "days", 0, "Number of days")
	foodCmd.Flags().Int64Var(&foodPerDay, "per-day", 0, "Food budget per day")
	foodCmd.MarkFlagRequired("days")
	foodCmd.MarkFlagRequired("per-day")

	hotelCmd.Flags().Int64Var(&hotelNights, "nights", 0, "Number of nights")
	hotelCmd.Flags().Int64Var(&hotelPerNight, "per-night", 0, "Price per night")
	hotelCmd.MarkFlagRequired("nights")
	hotelCmd.MarkFlagRequired("per-night")

	transportCmd.Flags().Int64Var(&transportKM, "km", 0, "Distance in kilometres")
	transportCmd.Flags().StringVar(&transportType, "type", "", "Transport type (bus, train, cab, flight)")
	transportCmd.MarkFlagRequired("km")
	transportCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(foodCmd, hotelCmd, transportCmd)
}
