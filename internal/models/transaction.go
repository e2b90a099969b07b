package models

import (
	"github.com/shopspring/decimal"

	"condogest/internal/format"
)

// TransactionDirection represents the direction of a financial movement.
// Direction is an explicit field, never inferred from the amount's sign.
type TransactionDirection string

const (
	TransactionIncome  TransactionDirection = "income"
	TransactionExpense TransactionDirection = "expense"
)

// TransactionStatus represents the payment state of a transaction.
type TransactionStatus string

const (
	TransactionPaid    TransactionStatus = "paid"
	TransactionPending TransactionStatus = "pending"
)

// Transaction represents a single financial movement of the condominium.
// Amount is a non-negative decimal in the condominium's currency.
type Transaction struct {
	ID          string               `json:"id"`
	Direction   TransactionDirection `json:"type"`
	Description string               `json:"description"`
	Amount      decimal.Decimal      `json:"amount"`
	Category    string               `json:"category"`
	Date        format.Date          `json:"date"`
	Status      TransactionStatus    `json:"status"`
	Observation string               `json:"observation,omitempty"`
}

// StatusLabel returns the pt-BR display label for the transaction status.
func (t Transaction) StatusLabel() string {
	if t.Status == TransactionPaid {
		return "Pago"
	}
	return "Pendente"
}
