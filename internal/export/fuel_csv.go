package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// FuelHeader is the CSV header for the fuel collection.
const FuelHeader = "id,shipment_id,driver,plate,fill_type,station,fuel_type,liters,price_per_liter,odometer_before,odometer_after,fleet_card,date"

const (
	fuelNumFields = 13
	fuelColID     = 0
	fuelColShip   = 1
	fuelColDriver = 2
	fuelColPlate  = 3
	fuelColFill   = 4
	fuelColStn    = 5
	fuelColType   = 6
	fuelColLiters = 7
	fuelColPrice  = 8
	fuelColOdoB   = 9
	fuelColOdoA   = 10
	fuelColCard   = 11
	fuelColDate   = 12
)

// ReadFuelEntries reads all fuel fills from a fuel CSV reader.
func ReadFuelEntries(r io.Reader) ([]model.FuelEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fuelNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading fuel CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var out []model.FuelEntry
	for i, rec := range records[1:] {
		f, err := UnmarshalFuelEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// WriteFuelEntries writes fuel fills to a CSV writer, header included.
func WriteFuelEntries(w io.Writer, entries []model.FuelEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(FuelHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, f := range entries {
		if err := cw.Write(MarshalFuelEntry(f)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalFuelEntry converts a FuelEntry to a CSV row.
func MarshalFuelEntry(f model.FuelEntry) []string {
	row := make([]string, fuelNumFields)
	row[fuelColID] = f.ID
	row[fuelColShip] = f.ShipmentID
	row[fuelColDriver] = f.DriverName
	row[fuelColPlate] = f.PlateNumber
	row[fuelColFill] = string(f.FillType)
	row[fuelColStn] = f.StationName
	row[fuelColType] = f.FuelType
	row[fuelColLiters] = f.Liters.String()
	row[fuelColPrice] = f.PricePerLiter.StringFixed(2)
	row[fuelColOdoB] = f.OdometerBefore.String()
	row[fuelColOdoA] = f.OdometerAfter.String()
	row[fuelColCard] = f.FleetCardID
	if !f.Date.IsZero() {
		row[fuelColDate] = f.Date.Format(dateFormat)
	}
	return row
}

// UnmarshalFuelEntry converts a CSV row to a FuelEntry.
func UnmarshalFuelEntry(record []string) (model.FuelEntry, error) {
	if len(record) != fuelNumFields {
		return model.FuelEntry{}, fmt.Errorf("expected %d fields, got %d", fuelNumFields, len(record))
	}

	liters, err := parseDecimalField("liters", record[fuelColLiters])
	if err != nil {
		return model.FuelEntry{}, err
	}
	price, err := parseDecimalField("price_per_liter", record[fuelColPrice])
	if err != nil {
		return model.FuelEntry{}, err
	}
	odoBefore, err := parseDecimalField("odometer_before", record[fuelColOdoB])
	if err != nil {
		return model.FuelEntry{}, err
	}
	odoAfter, err := parseDecimalField("odometer_after", record[fuelColOdoA])
	if err != nil {
		return model.FuelEntry{}, err
	}

	var date time.Time
	if record[fuelColDate] != "" {
		date, err = time.Parse(dateFormat, record[fuelColDate])
		if err != nil {
			return model.FuelEntry{}, fmt.Errorf("parsing date %q: %w", record[fuelColDate], err)
		}
	}

	return model.FuelEntry{
		ID:             record[fuelColID],
		ShipmentID:     record[fuelColShip],
		DriverName:     record[fuelColDriver],
		PlateNumber:    record[fuelColPlate],
		FillType:       model.FillType(record[fuelColFill]),
		StationName:    record[fuelColStn],
		FuelType:       record[fuelColType],
		Liters:         liters,
		PricePerLiter:  price,
		OdometerBefore: odoBefore,
		OdometerAfter:  odoAfter,
		FleetCardID:    record[fuelColCard],
		Date:           date,
	}, nil
}

// parseDecimalField parses a decimal column, treating empty as zero.
func parseDecimalField(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", name, value, err)
	}
	return d, nil
}
