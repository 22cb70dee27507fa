package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roadbook-dev/roadbook/internal/forms"
	"github.com/roadbook-dev/roadbook/internal/model"
	"github.com/roadbook-dev/roadbook/internal/query"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func newListCommand(dataDir *string) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
	}
	listCmd.AddCommand(newListExpensesCommand(dataDir))
	listCmd.AddCommand(newListFuelCommand(dataDir))
	listCmd.AddCommand(newListParkingCommand(dataDir))
	return listCmd
}

func direction(desc bool) query.Direction {
	if desc {
		return query.Descending
	}
	return query.Ascending
}

func newListExpensesCommand(dataDir *string) *cobra.Command {
	var filter query.ExpenseFilter
	var sortKey string
	var desc bool

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List general expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.Expenses(s.Store.Expenses(), filter, query.ExpenseSort(sortKey), direction(desc))
			printExpenses(view)
			return nil
		},
	}

	addExpenseFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "date", "date|amount|shipment|category")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func newListFuelCommand(dataDir *string) *cobra.Command {
	var filter query.FuelFilter
	var sortKey string
	var desc bool

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "List fuel fills",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.FuelEntries(s.Store.FuelEntries(), filter, query.FuelSort(sortKey), direction(desc))
			printFuelEntries(view)
			return nil
		},
	}

	addFuelFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "date", "date|liters|cost|shipment")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func newListParkingCommand(dataDir *string) *cobra.Command {
	var filter query.ParkingFilter
	var sortKey string
	var desc bool

	cmd := &cobra.Command{
		Use:   "parking",
		Short: "List parking/rest stops",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.ParkingEntries(s.Store.ParkingEntries(), filter, query.ParkingSort(sortKey), direction(desc))
			printParkingEntries(view)
			return nil
		},
	}

	addParkingFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "start", "start|amount|duration|stage|shipment")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func addExpenseFilterFlags(cmd *cobra.Command, f *query.ExpenseFilter) {
	cmd.Flags().StringVar(&f.ShipmentID, "shipment", query.All, "filter by shipment ID")
	cmd.Flags().StringVar(&f.Category, "category", query.All, "filter by category")
	cmd.Flags().StringVar(&f.Approval, "status", query.All, "filter by approval status")
}

func addFuelFilterFlags(cmd *cobra.Command, f *query.FuelFilter) {
	cmd.Flags().StringVar(&f.ShipmentID, "shipment", query.All, "filter by shipment ID")
	cmd.Flags().StringVar(&f.FillType, "fill", query.All, "filter by fill type")
}

func addParkingFilterFlags(cmd *cobra.Command, f *query.ParkingFilter) {
	cmd.Flags().StringVar(&f.ShipmentID, "shipment", query.All, "filter by shipment ID")
	cmd.Flags().StringVar(&f.PlaceType, "place", query.All, "filter by place type")
}

func printExpenses(view []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tSHIPMENT\tDATE\tCATEGORY\tDESCRIPTION\tAMOUNT\tSTATUS")
	for _, e := range view {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format(forms.DateFormat)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.ShipmentID, date, e.Category, e.Description, e.Amount.StringFixed(2), e.ApprovalStatus)
	}
	fmt.Fprintf(w, "(%d records)\n", len(view))
}

func printFuelEntries(view []model.FuelEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tSHIPMENT\tDATE\tSTATION\tFILL\tLITERS\tPRICE/L\tCOST\tCARD")
	for _, f := range view {
		date := ""
		if !f.Date.IsZero() {
			date = f.Date.Format(forms.DateFormat)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.ShipmentID, date, f.StationName, f.FillType,
			f.Liters.String(), f.PricePerLiter.StringFixed(2), f.Cost().StringFixed(2), f.FleetCardID)
	}
	fmt.Fprintf(w, "(%d records)\n", len(view))
}

func printParkingEntries(view []model.ParkingEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tSHIPMENT\tSTAGE\tLOCATION\tPLACE\tDURATION\tAMOUNT")
	for _, p := range view {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.ShipmentID, p.RouteStage, p.Location, p.PlaceType,
			p.FormatDuration(), p.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "(%d records)\n", len(view))
}
