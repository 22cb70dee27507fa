package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roadbook-dev/roadbook/internal/export"
	"github.com/roadbook-dev/roadbook/internal/query"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func newExportCommand(dataDir *string) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a filtered, sorted view to a CSV file",
	}
	exportCmd.AddCommand(newExportExpensesCommand(dataDir))
	exportCmd.AddCommand(newExportFuelCommand(dataDir))
	exportCmd.AddCommand(newExportParkingCommand(dataDir))
	return exportCmd
}

func newExportExpensesCommand(dataDir *string) *cobra.Command {
	var filter query.ExpenseFilter
	var sortKey, outDir string
	var desc bool

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Export the expense view",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.Expenses(s.Store.Expenses(), filter, query.ExpenseSort(sortKey), direction(desc))
			return writeExport(outDir, export.CollectionExpenses, len(view), func(w io.Writer) error {
				return export.WriteExpenses(w, view)
			})
		},
	}

	addExpenseFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "date", "date|amount|shipment|category")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	return cmd
}

func newExportFuelCommand(dataDir *string) *cobra.Command {
	var filter query.FuelFilter
	var sortKey, outDir string
	var desc bool

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Export the fuel view",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.FuelEntries(s.Store.FuelEntries(), filter, query.FuelSort(sortKey), direction(desc))
			return writeExport(outDir, export.CollectionFuel, len(view), func(w io.Writer) error {
				return export.WriteFuelEntries(w, view)
			})
		},
	}

	addFuelFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "date", "date|liters|cost|shipment")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	return cmd
}

func newExportParkingCommand(dataDir *string) *cobra.Command {
	var filter query.ParkingFilter
	var sortKey, outDir string
	var desc bool

	cmd := &cobra.Command{
		Use:   "parking",
		Short: "Export the parking view",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			view := query.ParkingEntries(s.Store.ParkingEntries(), filter, query.ParkingSort(sortKey), direction(desc))
			return writeExport(outDir, export.CollectionParking, len(view), func(w io.Writer) error {
				return export.WriteParkingEntries(w, view)
			})
		},
	}

	addParkingFilterFlags(cmd, &filter)
	cmd.Flags().StringVar(&sortKey, "sort", "start", "start|amount|duration|stage|shipment")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	return cmd
}

func writeExport(outDir, collection string, rows int, write func(w io.Writer) error) error {
	path := filepath.Join(outDir, export.Filename(collection))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Printf("Exported %d %s records to %s\n", rows, collection, path)
	return nil
}
