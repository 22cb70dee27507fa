package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a general road expense.
type ExpenseCategory string

const (
	CategoryToll      ExpenseCategory = "toll"
	CategoryMeal      ExpenseCategory = "meal"
	CategoryOvernight ExpenseCategory = "overnight"
	CategoryOther     ExpenseCategory = "other"
)

// PaymentMethod records how an expense was settled.
type PaymentMethod string

const (
	PayCash           PaymentMethod = "cash"
	PayFleetCard      PaymentMethod = "fleet-card"
	PayCompanyAccount PaymentMethod = "company-account"
)

// ApprovalStatus is the review state of an expense.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
)

// Expense is one transaction drawn against a shipment's cash advance.
type Expense struct {
	ID             string
	ShipmentID     string
	DriverName     string
	Category       ExpenseCategory
	Description    string
	PaymentMethod  PaymentMethod
	Amount         decimal.Decimal
	HasReceipt     bool
	ApprovalStatus ApprovalStatus
	Date           time.Time
}
