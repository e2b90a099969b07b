package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"condogest/internal/format"
	"condogest/internal/models"
)

// Date parses a fixture date string, failing the test on bad input.
func Date(t *testing.T, s string) format.Date {
	t.Helper()

	d, err := format.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// Transaction builds a transaction fixture with sensible defaults.
func Transaction(t *testing.T, direction models.TransactionDirection, amount, date string) models.Transaction {
	t.Helper()

	return models.Transaction{
		ID:          "tx-" + date + "-" + amount,
		Direction:   direction,
		Description: "Fixture transaction",
		Amount:      decimal.RequireFromString(amount),
		Category:    "Geral",
		Date:        Date(t, date),
		Status:      models.TransactionPaid,
	}
}
