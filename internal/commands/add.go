package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roadbook-dev/roadbook/internal/forms"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func newAddCommand(dataDir *string) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
	}
	addCmd.AddCommand(newAddExpenseCommand(dataDir))
	addCmd.AddCommand(newAddFuelCommand(dataDir))
	addCmd.AddCommand(newAddParkingCommand(dataDir))
	return addCmd
}

func newAddExpenseCommand(dataDir *string) *cobra.Command {
	var form forms.ExpenseForm

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record a general expense against a shipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			if shipment, ok := s.Config.Shipment(form.ShipmentID); ok && form.DriverName == "" {
				form.DriverName = shipment.DriverName
			}

			rec, ok := form.Record()
			if !ok {
				fmt.Println("Skipped: shipment and description are required.")
				return nil
			}

			recID := s.Store.CreateExpense(rec)
			if err := s.Save(); err != nil {
				return err
			}

			fmt.Printf("Recorded expense %s\n", recID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.ShipmentID, "shipment", "", "shipment ID")
	cmd.Flags().StringVar(&form.DriverName, "driver", "", "driver name (defaults from shipment)")
	cmd.Flags().StringVar(&form.Category, "category", "other", "toll|meal|overnight|other")
	cmd.Flags().StringVar(&form.Description, "description", "", "what the money went to")
	cmd.Flags().StringVar(&form.PaymentMethod, "payment", "cash", "cash|fleet-card|company-account")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "amount spent")
	cmd.Flags().BoolVar(&form.HasReceipt, "receipt", false, "a receipt was collected")
	cmd.Flags().StringVar(&form.ApprovalStatus, "status", "pending", "pending|approved")
	cmd.Flags().StringVar(&form.Date, "date", "", "date (YYYY-MM-DD)")

	return cmd
}

func newAddFuelCommand(dataDir *string) *cobra.Command {
	var form forms.FuelForm

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Record a fuel fill against a shipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			if shipment, ok := s.Config.Shipment(form.ShipmentID); ok {
				form.ApplyShipmentDefaults(shipment)
			}

			rec, ok := form.Record()
			if !ok {
				fmt.Println("Skipped: shipment and station are required.")
				return nil
			}

			recID := s.Store.CreateFuelEntry(rec)
			if err := s.Save(); err != nil {
				return err
			}

			fmt.Printf("Recorded fuel fill %s (cost %s)\n", recID, rec.Cost().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.ShipmentID, "shipment", "", "shipment ID")
	cmd.Flags().StringVar(&form.DriverName, "driver", "", "driver name (defaults from shipment)")
	cmd.Flags().StringVar(&form.PlateNumber, "plate", "", "plate number (defaults from shipment)")
	cmd.Flags().StringVar(&form.FillType, "fill", "full", "full|partial")
	cmd.Flags().StringVar(&form.StationName, "station", "", "station name")
	cmd.Flags().StringVar(&form.FuelType, "fuel-type", "", "fuel type, e.g. \"Diesel B7\"")
	cmd.Flags().StringVar(&form.Liters, "liters", "", "volume filled")
	cmd.Flags().StringVar(&form.PricePerLiter, "price", "", "price per liter")
	cmd.Flags().StringVar(&form.OdometerBefore, "odo-before", "", "odometer before the fill")
	cmd.Flags().StringVar(&form.OdometerAfter, "odo-after", "", "odometer after the leg")
	cmd.Flags().StringVar(&form.FleetCardID, "card", "", "fleet card ID (defaults from shipment)")
	cmd.Flags().StringVar(&form.Date, "date", "", "date (YYYY-MM-DD)")

	return cmd
}

func newAddParkingCommand(dataDir *string) *cobra.Command {
	var form forms.ParkingForm

	cmd := &cobra.Command{
		Use:   "parking",
		Short: "Record a parking/rest stop against a shipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Open(*dataDir)
			if err != nil {
				return err
			}

			if shipment, ok := s.Config.Shipment(form.ShipmentID); ok {
				form.ApplyShipmentDefaults(shipment)
			}

			rec, ok := form.Record()
			if !ok {
				fmt.Println("Skipped: shipment and location are required.")
				return nil
			}

			recID := s.Store.CreateParkingEntry(rec)
			if err := s.Save(); err != nil {
				return err
			}

			fmt.Printf("Recorded parking stop %s (%s)\n", recID, rec.FormatDuration())
			return nil
		},
	}

	cmd.Flags().StringVar(&form.ShipmentID, "shipment", "", "shipment ID")
	cmd.Flags().StringVar(&form.DriverName, "driver", "", "driver name (defaults from shipment)")
	cmd.Flags().StringVar(&form.RouteStage, "stage", "1", "route stage (1-based)")
	cmd.Flags().StringVar(&form.Location, "location", "", "where the truck stopped")
	cmd.Flags().StringVar(&form.PlaceType, "place", "other", "rest-area|gas-station|warehouse|other")
	cmd.Flags().StringVar(&form.Start, "start", "", "start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&form.End, "end", "", "end time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&form.Reason, "reason", "", "reason for the stop")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "amount paid, 0 for free parking")

	return cmd
}
