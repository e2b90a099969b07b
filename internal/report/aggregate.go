package report

import (
	"condogest/internal/models"
	"condogest/internal/money"
)

// Aggregate reduces a transaction set to its financial summary. Sums
// accumulate in integer centavos; the balance is income minus expense
// and may be negative. The function is pure and order-independent.
func Aggregate(transactions []models.Transaction) money.Summary {
	var s money.Summary
	for _, t := range transactions {
		amount := money.FromDecimal(t.Amount)
		switch t.Direction {
		case models.TransactionIncome:
			s.Income += amount
		case models.TransactionExpense:
			s.Expense += amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// SummaryFromDecimals converts a server-side summary to centavos. The
// balance is recomputed locally so the income-minus-expense identity
// holds even if the upstream payload disagrees with itself.
func SummaryFromDecimals(fs models.FinancialSummary) money.Summary {
	s := money.Summary{
		Income:  money.FromDecimal(fs.Income),
		Expense: money.FromDecimal(fs.Expense),
	}
	s.Balance = s.Income - s.Expense
	return s
}
