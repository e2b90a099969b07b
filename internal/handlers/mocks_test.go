package handlers

import (
	"context"

	"condogest/internal/document"
	"condogest/internal/models"
	"condogest/internal/recordstore"
	"condogest/internal/report"
)

// mockGenerator implements report.Generator with overridable functions.
type mockGenerator struct {
	generateFn func(ctx context.Context, slug string, req report.Request) (*document.Document, error)
	publicFn   func(ctx context.Context, shareToken string) (*document.Document, error)
}

func (m *mockGenerator) Generate(ctx context.Context, slug string, req report.Request) (*document.Document, error) {
	return m.generateFn(ctx, slug, req)
}

func (m *mockGenerator) Public(ctx context.Context, shareToken string) (*document.Document, error) {
	return m.publicFn(ctx, shareToken)
}

// mockLinker implements report.ShareLinker with an overridable function.
type mockLinker struct {
	issueFn func(ctx context.Context, bearer string, period report.Period) (*report.ShareLink, error)
}

func (m *mockLinker) Issue(ctx context.Context, bearer string, period report.Period) (*report.ShareLink, error) {
	return m.issueFn(ctx, bearer, period)
}

// mockStore implements recordstore.Client with overridable functions.
// Methods without an override fail loudly when reached so tests notice
// unexpected upstream calls.
type mockStore struct {
	listTransactionsFn  func(ctx context.Context, bearer string) ([]models.Transaction, error)
	createTransactionFn func(ctx context.Context, bearer string, payload recordstore.TransactionPayload) (*models.Transaction, error)
	updateTransactionFn func(ctx context.Context, bearer, id string, payload recordstore.TransactionUpdate) (*models.Transaction, error)
	deleteTransactionFn func(ctx context.Context, bearer, id string) error
}

func (m *mockStore) ListTransactions(ctx context.Context, bearer string) ([]models.Transaction, error) {
	return m.listTransactionsFn(ctx, bearer)
}

func (m *mockStore) CreateTransaction(ctx context.Context, bearer string, payload recordstore.TransactionPayload) (*models.Transaction, error) {
	return m.createTransactionFn(ctx, bearer, payload)
}

func (m *mockStore) UpdateTransaction(ctx context.Context, bearer, id string, payload recordstore.TransactionUpdate) (*models.Transaction, error) {
	return m.updateTransactionFn(ctx, bearer, id, payload)
}

func (m *mockStore) DeleteTransaction(ctx context.Context, bearer, id string) error {
	return m.deleteTransactionFn(ctx, bearer, id)
}

func (m *mockStore) GetFinancialSummary(ctx context.Context, bearer string, month, year int) (*models.FinancialSummary, error) {
	panic("unexpected GetFinancialSummary call")
}

func (m *mockStore) IssueShareToken(ctx context.Context, bearer string, month, year int) (*models.ShareToken, error) {
	panic("unexpected IssueShareToken call")
}

func (m *mockStore) GetPublicReport(ctx context.Context, shareToken string) (*models.PublicReport, error) {
	panic("unexpected GetPublicReport call")
}

func (m *mockStore) ListOccurrences(ctx context.Context, bearer string) ([]models.Occurrence, error) {
	panic("unexpected ListOccurrences call")
}

func (m *mockStore) ListWaterReadings(ctx context.Context, bearer string) ([]models.Reading, error) {
	panic("unexpected ListWaterReadings call")
}

func (m *mockStore) ListUnits(ctx context.Context, bearer string) ([]models.Unit, error) {
	panic("unexpected ListUnits call")
}

func (m *mockStore) ListReservations(ctx context.Context, bearer string) ([]models.Reservation, error) {
	panic("unexpected ListReservations call")
}

func (m *mockStore) ListUsers(ctx context.Context, bearer string) ([]models.User, error) {
	panic("unexpected ListUsers call")
}

func (m *mockStore) ListCommonAreas(ctx context.Context, bearer string) ([]models.CommonArea, error) {
	panic("unexpected ListCommonAreas call")
}

var (
	_ report.Generator   = (*mockGenerator)(nil)
	_ report.ShareLinker = (*mockLinker)(nil)
	_ recordstore.Client = (*mockStore)(nil)
)
