package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ParkingHeader is the CSV header for the parking collection.
const ParkingHeader = "id,shipment_id,driver,route_stage,location,place_type,start_time,end_time,reason,amount"

const (
	parkNumFields = 10
	parkColID     = 0
	parkColShip   = 1
	parkColDriver = 2
	parkColStage  = 3
	parkColLoc    = 4
	parkColPlace  = 5
	parkColStart  = 6
	parkColEnd    = 7
	parkColReason = 8
	parkColAmount = 9
)

// ReadParkingEntries reads all parking stops from a parking CSV reader.
func ReadParkingEntries(r io.Reader) ([]model.ParkingEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = parkNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading parking CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var out []model.ParkingEntry
	for i, rec := range records[1:] {
		p, err := UnmarshalParkingEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// WriteParkingEntries writes parking stops to a CSV writer, header included.
func WriteParkingEntries(w io.Writer, entries []model.ParkingEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ParkingHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range entries {
		if err := cw.Write(MarshalParkingEntry(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalParkingEntry converts a ParkingEntry to a CSV row. Absent
// timestamps marshal as empty fields.
func MarshalParkingEntry(p model.ParkingEntry) []string {
	row := make([]string, parkNumFields)
	row[parkColID] = p.ID
	row[parkColShip] = p.ShipmentID
	row[parkColDriver] = p.DriverName
	row[parkColStage] = strconv.Itoa(p.RouteStage)
	row[parkColLoc] = p.Location
	row[parkColPlace] = string(p.PlaceType)
	if !p.StartTime.IsZero() {
		row[parkColStart] = p.StartTime.Format(timeFormat)
	}
	if !p.EndTime.IsZero() {
		row[parkColEnd] = p.EndTime.Format(timeFormat)
	}
	row[parkColReason] = p.Reason
	row[parkColAmount] = p.Amount.StringFixed(2)
	return row
}

// UnmarshalParkingEntry converts a CSV row to a ParkingEntry.
func UnmarshalParkingEntry(record []string) (model.ParkingEntry, error) {
	if len(record) != parkNumFields {
		return model.ParkingEntry{}, fmt.Errorf("expected %d fields, got %d", parkNumFields, len(record))
	}

	var stage int
	var err error
	if record[parkColStage] != "" {
		stage, err = strconv.Atoi(record[parkColStage])
		if err != nil {
			return model.ParkingEntry{}, fmt.Errorf("parsing route_stage %q: %w", record[parkColStage], err)
		}
	}

	var start, end time.Time
	if record[parkColStart] != "" {
		start, err = time.Parse(timeFormat, record[parkColStart])
		if err != nil {
			return model.ParkingEntry{}, fmt.Errorf("parsing start_time %q: %w", record[parkColStart], err)
		}
	}
	if record[parkColEnd] != "" {
		end, err = time.Parse(timeFormat, record[parkColEnd])
		if err != nil {
			return model.ParkingEntry{}, fmt.Errorf("parsing end_time %q: %w", record[parkColEnd], err)
		}
	}

	amount, err := parseDecimalField("amount", record[parkColAmount])
	if err != nil {
		return model.ParkingEntry{}, err
	}

	return model.ParkingEntry{
		ID:         record[parkColID],
		ShipmentID: record[parkColShip],
		DriverName: record[parkColDriver],
		RouteStage: stage,
		Location:   record[parkColLoc],
		PlaceType:  model.PlaceType(record[parkColPlace]),
		StartTime:  start,
		EndTime:    end,
		Reason:     record[parkColReason],
		Amount:     amount,
	}, nil
}
