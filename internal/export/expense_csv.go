package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ExpenseHeader is the CSV header for the expense collection.
const ExpenseHeader = "id,shipment_id,driver,category,description,payment_method,amount,has_receipt,approval_status,date"

const (
	expNumFields  = 10
	expColID      = 0
	expColShip    = 1
	expColDriver  = 2
	expColCat     = 3
	expColDesc    = 4
	expColPayment = 5
	expColAmount  = 6
	expColReceipt = 7
	expColStatus  = 8
	expColDate    = 9
)

// ReadExpenses reads all expenses from an expenses CSV reader.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = expNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var out []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// WriteExpenses writes expenses to a CSV writer, header included.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ExpenseHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, expNumFields)
	row[expColID] = e.ID
	row[expColShip] = e.ShipmentID
	row[expColDriver] = e.DriverName
	row[expColCat] = string(e.Category)
	row[expColDesc] = e.Description
	row[expColPayment] = string(e.PaymentMethod)
	row[expColAmount] = e.Amount.StringFixed(2)
	row[expColReceipt] = strconv.FormatBool(e.HasReceipt)
	row[expColStatus] = string(e.ApprovalStatus)
	if !e.Date.IsZero() {
		row[expColDate] = e.Date.Format(dateFormat)
	}
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != expNumFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", expNumFields, len(record))
	}

	var amount decimal.Decimal
	var err error
	if record[expColAmount] != "" {
		amount, err = decimal.NewFromString(record[expColAmount])
		if err != nil {
			return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[expColAmount], err)
		}
	}

	var date time.Time
	if record[expColDate] != "" {
		date, err = time.Parse(dateFormat, record[expColDate])
		if err != nil {
			return model.Expense{}, fmt.Errorf("parsing date %q: %w", record[expColDate], err)
		}
	}

	hasReceipt, _ := strconv.ParseBool(record[expColReceipt])

	return model.Expense{
		ID:             record[expColID],
		ShipmentID:     record[expColShip],
		DriverName:     record[expColDriver],
		Category:       model.ExpenseCategory(record[expColCat]),
		Description:    record[expColDesc],
		PaymentMethod:  model.PaymentMethod(record[expColPayment]),
		Amount:         amount,
		HasReceipt:     hasReceipt,
		ApprovalStatus: model.ApprovalStatus(record[expColStatus]),
		Date:           date,
	}, nil
}
