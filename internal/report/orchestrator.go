package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"condogest/internal/document"
	apperrors "condogest/internal/errors"
	"condogest/internal/format"
	"condogest/internal/models"
	"condogest/internal/money"
	"condogest/internal/recordstore"
)

// Report slugs form the fixed filename vocabulary.
const (
	SlugFinancial    = "financeiro"
	SlugOccurrences  = "ocorrencias"
	SlugWater        = "agua"
	SlugReservations = "reservas"
)

// Report titles as rendered on the document.
const (
	titleFinancial    = "Relatório Financeiro"
	titleOccurrences  = "Relatório de Ocorrências"
	titleWater        = "Relatório de Consumo de Água"
	titleReservations = "Relatório de Reservas"
)

// Request captures everything one generation needs. The period and
// labels are frozen here, so a document always reflects the period it
// was requested for even if the caller's selection has moved on.
type Request struct {
	Period           Period
	Bearer           string
	RequestedBy      string
	OrganizationName string
	Address          string
	GeneratedAt      time.Time
}

// documentContext builds the renderer context from the captured request.
func (r Request) documentContext(title string) document.Context {
	generatedAt := r.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	return document.Context{
		Title:            title,
		OrganizationName: r.OrganizationName,
		Address:          r.Address,
		RequestedBy:      r.RequestedBy,
		Month:            r.Period.Month,
		Year:             r.Period.Year,
		GeneratedAt:      generatedAt,
	}
}

// Orchestrator composes record-store fetches, filtering, aggregation,
// and layout into finished documents, one procedure per report type.
// Paired lookups are fetched concurrently and joined; if either fetch
// fails the whole generation fails with a single error and nothing is
// rendered from partial data.
type Orchestrator struct {
	store recordstore.Client
}

// NewOrchestrator creates an Orchestrator backed by the given client.
func NewOrchestrator(store recordstore.Client) *Orchestrator {
	return &Orchestrator{store: store}
}

// Generate dispatches to the report procedure for the given slug.
func (o *Orchestrator) Generate(ctx context.Context, slug string, req Request) (*document.Document, error) {
	switch slug {
	case SlugFinancial:
		return o.Financial(ctx, req)
	case SlugOccurrences:
		return o.Occurrences(ctx, req)
	case SlugWater:
		return o.Water(ctx, req)
	case SlugReservations:
		return o.Reservations(ctx, req)
	default:
		return nil, apperrors.ErrUnknownReport
	}
}

// Financial generates the financial report: filtered transactions with a
// locally aggregated income/expense/balance summary.
func (o *Orchestrator) Financial(ctx context.Context, req Request) (*document.Document, error) {
	transactions, err := o.store.ListTransactions(ctx, req.Bearer)
	if err != nil {
		return nil, err
	}

	filtered := FilterTransactions(transactions, req.Period)
	summary := Aggregate(filtered)

	rows := make([]document.Row, 0, len(filtered))
	for _, t := range filtered {
		rows = append(rows, document.Row{
			t.Date.Display(),
			t.Description,
			t.Category,
			signedAmount(t),
			t.StatusLabel(),
		})
	}

	return document.Layout(document.Spec{
		Context: req.documentContext(titleFinancial),
		Columns: financialColumns(),
		Rows:    rows,
		Summary: &summary,
		Slug:    SlugFinancial,
	}), nil
}

// Occurrences generates the occurrences report, resolving reporter names
// through the user lookup table.
func (o *Orchestrator) Occurrences(ctx context.Context, req Request) (*document.Document, error) {
	var (
		occurrences []models.Occurrence
		users       []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		occurrences, err = o.store.ListOccurrences(gctx, req.Bearer)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = o.store.ListUsers(gctx, req.Bearer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := userNames(users)
	filtered := FilterOccurrences(occurrences, req.Period)

	rows := make([]document.Row, 0, len(filtered))
	for _, oc := range filtered {
		rows = append(rows, document.Row{
			oc.CreatedAt.Display(),
			oc.Title,
			oc.Category,
			oc.Status,
			reporterName(oc, names),
		})
	}

	return document.Layout(document.Spec{
		Context: req.documentContext(titleOccurrences),
		Columns: occurrenceColumns(),
		Rows:    rows,
		Slug:    SlugOccurrences,
	}), nil
}

// Water generates the water consumption report, resolving unit labels
// through the unit lookup table.
func (o *Orchestrator) Water(ctx context.Context, req Request) (*document.Document, error) {
	var (
		readings []models.Reading
		units    []models.Unit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		readings, err = o.store.ListWaterReadings(gctx, req.Bearer)
		return err
	})
	g.Go(func() error {
		var err error
		units, err = o.store.ListUnits(gctx, req.Bearer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(units))
	for _, u := range units {
		labels[u.ID] = u.Label()
	}

	filtered := FilterReadings(readings, req.Period)

	rows := make([]document.Row, 0, len(filtered))
	for _, r := range filtered {
		label, ok := labels[r.UnitID]
		if !ok {
			label = "Não identificada"
		}
		rows = append(rows, document.Row{
			r.GoverningDate().Display(),
			label,
			money.Consumption(r.Consumption),
		})
	}

	return document.Layout(document.Spec{
		Context: req.documentContext(titleWater),
		Columns: waterColumns(),
		Rows:    rows,
		Slug:    SlugWater,
	}), nil
}

// Reservations generates the reservations report, resolving requester
// and common-area names through their lookup tables.
func (o *Orchestrator) Reservations(ctx context.Context, req Request) (*document.Document, error) {
	var (
		reservations []models.Reservation
		users        []models.User
		areas        []models.CommonArea
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = o.store.ListReservations(gctx, req.Bearer)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = o.store.ListUsers(gctx, req.Bearer)
		return err
	})
	g.Go(func() error {
		var err error
		areas, err = o.store.ListCommonAreas(gctx, req.Bearer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := userNames(users)
	areaNames := make(map[string]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	filtered := FilterReservations(reservations, req.Period)

	rows := make([]document.Row, 0, len(filtered))
	for _, r := range filtered {
		area := areaNames[r.CommonAreaID]
		if area == "" {
			area = "Área Comum"
		}
		requester := names[r.RequesterID]
		if requester == "" {
			requester = "Desconhecido"
		}
		rows = append(rows, document.Row{
			r.StartTime.Display(),
			area,
			requester,
			timeRange(r),
			r.Status,
		})
	}

	return document.Layout(document.Spec{
		Context: req.documentContext(titleReservations),
		Columns: reservationColumns(),
		Rows:    rows,
		Slug:    SlugReservations,
	}), nil
}

// Public generates the financial document for a token-scoped public
// report. The summary is the server's; the balance identity is still
// re-derived locally.
func (o *Orchestrator) Public(ctx context.Context, shareToken string) (*document.Document, error) {
	payload, err := o.store.GetPublicReport(ctx, shareToken)
	if err != nil {
		return nil, err
	}

	summary := SummaryFromDecimals(payload.Summary)

	rows := make([]document.Row, 0, len(payload.Transactions))
	for _, t := range payload.Transactions {
		rows = append(rows, document.Row{
			t.Date.Display(),
			t.Description,
			t.Category,
			signedAmount(t),
			t.StatusLabel(),
		})
	}

	return document.Layout(document.Spec{
		Context: document.Context{
			Title:            titleFinancial,
			OrganizationName: payload.OrganizationName,
			Month:            payload.Month,
			Year:             payload.Year,
			GeneratedAt:      time.Now(),
		},
		Columns: financialColumns(),
		Rows:    rows,
		Summary: &summary,
		Slug:    SlugFinancial,
	}), nil
}

// signedAmount renders a transaction amount with an explicit sign:
// income rows get "+", expense rows get "-". Amounts themselves are
// stored unsigned.
func signedAmount(t models.Transaction) string {
	amount := money.FromDecimal(t.Amount)
	if t.Direction == models.TransactionIncome {
		return "+" + amount.BRL()
	}
	return "-" + amount.BRL()
}

// reporterName resolves the display name of an occurrence reporter.
func reporterName(o models.Occurrence, names map[string]string) string {
	if o.Anonymous {
		return "Anônimo"
	}
	if name := names[o.ReporterID]; name != "" {
		return name
	}
	return "Não identificado"
}

func userNames(users []models.User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func timeRange(r models.Reservation) string {
	return format.TimeRange(r.StartTime.Time, r.EndTime.Time)
}

func financialColumns() []document.Column {
	return []document.Column{
		{Header: "Data", Width: 24, Align: "L"},
		{Header: "Descrição", Width: 64, Align: "L"},
		{Header: "Categoria", Width: 34, Align: "L"},
		{Header: "Valor", Width: 34, Align: "R"},
		{Header: "Status", Width: 34, Align: "C"},
	}
}

func occurrenceColumns() []document.Column {
	return []document.Column{
		{Header: "Data", Width: 24, Align: "L"},
		{Header: "Título", Width: 56, Align: "L"},
		{Header: "Categoria", Width: 32, Align: "L"},
		{Header: "Status", Width: 28, Align: "C"},
		{Header: "Reportado por", Width: 50, Align: "L"},
	}
}

func waterColumns() []document.Column {
	return []document.Column{
		{Header: "Data da Leitura", Width: 40, Align: "L"},
		{Header: "Unidade", Width: 90, Align: "L"},
		{Header: "Consumo", Width: 60, Align: "R"},
	}
}

func reservationColumns() []document.Column {
	return []document.Column{
		{Header: "Data", Width: 26, Align: "L"},
		{Header: "Área Comum", Width: 52, Align: "L"},
		{Header: "Solicitante", Width: 52, Align: "L"},
		{Header: "Horário", Width: 32, Align: "C"},
		{Header: "Status", Width: 28, Align: "C"},
	}
}
