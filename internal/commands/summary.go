package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roadbook-dev/roadbook/internal/model"
	"github.com/roadbook-dev/roadbook/internal/report"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func newSummaryCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show balances and cross-collection aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}
			runSummary(s)
			return nil
		},
	}
}

func runSummary(s *session.Session) {
	expenses := s.Store.Expenses()
	fuel := s.Store.FuelEntries()
	parking := s.Store.ParkingEntries()

	fmt.Println("== Cash advances ==")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SHIPMENT\tADVANCED\tSPENT\tREMAINING")
	for _, b := range report.Balances(s.Advances(), expenses) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			b.ShipmentID, b.Advanced.StringFixed(2), b.Spent.StringFixed(2), b.Remaining.StringFixed(2))
	}
	w.Flush()

	sum := report.Summarize(s.Advances(), expenses, fuel, parking)
	fmt.Println("\n== Overall ==")
	fmt.Printf("Advanced: %s  Spent: %s (expenses %s, fuel %s, parking %s)  Remaining: %s\n",
		sum.TotalAdvanced.StringFixed(2), sum.TotalSpent.StringFixed(2),
		sum.ExpenseTotal.StringFixed(2), sum.FuelCost.StringFixed(2), sum.ParkingTotal.StringFixed(2),
		sum.Remaining.StringFixed(2))

	tot := report.TotalExpenses(expenses)
	fmt.Println("\n== Expenses by category ==")
	fmt.Printf("Tolls: %s  Meals: %s  Overnights: %s  Other: %s  Total: %s\n",
		tot.Tolls.StringFixed(2), tot.Meals.StringFixed(2), tot.Overnights.StringFixed(2),
		tot.Other.StringFixed(2), tot.Total.StringFixed(2))

	liters, cost := report.FuelTotals(fuel)
	kmPerLiter, effOK := report.Efficiency(fuel)
	avgPrice, priceOK := report.AveragePrice(fuel)
	fmt.Println("\n== Fuel ==")
	fmt.Printf("Fills: %d  Liters: %s  Cost: %s  Avg price/L: %s  km/L: %s\n",
		len(fuel), liters.String(), cost.StringFixed(2),
		report.FormatRatio(avgPrice, priceOK), report.FormatRatio(kmPerLiter, effOK))

	for _, usage := range report.ReconcileCards(fuel) {
		card := usage.CardID
		if card == "" {
			card = "(no card)"
		}
		fmt.Printf("  %s: %d fills, %s L, cost %s\n",
			card, usage.Fills, usage.Liters.String(), usage.Cost.StringFixed(2))
	}

	overview := report.SummarizeParking(parking)
	fmt.Println("\n== Parking ==")
	fmt.Printf("Stops: %d (%d paid, %d free)  Amount: %s  Time: %s\n",
		overview.Count, overview.Paid, overview.Free,
		overview.TotalAmount.StringFixed(2), model.FormatMinutes(overview.TotalMinutes))
	for _, g := range report.ParkingByPlace(parking) {
		fmt.Printf("  %s: %d stops, %s, %s\n",
			g.Place, g.Count, g.TotalAmount.StringFixed(2), model.FormatMinutes(g.TotalMinutes))
	}
	for _, g := range report.ParkingByStage(parking) {
		fmt.Printf("  stage %d: %d stops, %s, %s\n",
			g.Stage, g.Count, g.TotalAmount.StringFixed(2), model.FormatMinutes(g.TotalMinutes))
	}
}
