package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored daily totals",
	Long:  `Displays per-day consumption, production and average temperature from the database.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	totals, err := db.DailyTotals()
	if err != nil {
		return fmt.Errorf("listing daily totals: %w", err)
	}

	if len(totals) == 0 {
		fmt.Println("No data found. Run 'gridreport import' first.")
		return nil
	}

	count, err := db.Count()
	if err != nil {
		return fmt.Errorf("counting measurements: %w", err)
	}

	fmt.Println("\nDaily Totals:")
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("%-12s  %12s  %12s  %10s\n", "Date", "Cons. kWh", "Prod. kWh", "Avg °C")
	fmt.Println("------------------------------------------------------------")

	var totalCons, totalProd float64
	for _, day := range totals {
		fmt.Printf("%-12s  %12s  %12s  %10s\n",
			day.Day.Format("2006-01-02"),
			locale.Decimal(day.ConsumptionKWh),
			locale.Decimal(day.ProductionKWh),
			locale.Decimal(day.AvgTemperature))
		totalCons += day.ConsumptionKWh
		totalProd += day.ProductionKWh
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Total: %s kWh consumed, %s kWh produced (%s measurements, %d days)\n",
		locale.Decimal(totalCons), locale.Decimal(totalProd),
		humanize.Comma(int64(count)), len(totals))

	return nil
}
