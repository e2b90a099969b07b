package models

import "github.com/shopspring/decimal"

// FinancialSummary is the income/expense/balance aggregate as served by
// the condominium API. Values are decimals; local aggregation converts
// to integer centavos before any arithmetic.
type FinancialSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ShareToken is a server-issued, time-limited credential granting
// read-only access to one financial report.
type ShareToken struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}

// PublicReport is the token-scoped payload served to the unauthenticated
// public viewer. The summary is precomputed server-side.
type PublicReport struct {
	OrganizationName string           `json:"organization_name"`
	Month            int              `json:"month"`
	Year             int              `json:"year"`
	Summary          FinancialSummary `json:"summary"`
	Transactions     []Transaction    `json:"transactions"`
}
