package document

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"condogest/internal/money"
)

func testColumns() []Column {
	return []Column{
		{Header: "Data", Width: 40, Align: "L"},
		{Header: "Descrição", Width: 110, Align: "L"},
		{Header: "Valor", Width: 40, Align: "R"},
	}
}

func testContext() Context {
	return Context{
		Title:            "Relatório Financeiro",
		OrganizationName: "Residencial Jardim",
		RequestedBy:      "Maria Silva",
		Month:            12,
		Year:             2025,
		GeneratedAt:      time.Date(2025, 12, 5, 14, 30, 0, 0, time.UTC),
	}
}

func makeRows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{fmt.Sprintf("%02d/12/2025", i%28+1), fmt.Sprintf("Linha %d", i), "R$ 1,00"})
	}
	return rows
}

func TestLayoutEmpty(t *testing.T) {
	doc := Layout(Spec{
		Context: testContext(),
		Columns: testColumns(),
		Rows:    nil,
		Slug:    "financeiro",
	})

	if !doc.Empty {
		t.Error("expected Empty to be set")
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected a single placeholder page, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Rows) != 0 {
		t.Errorf("placeholder page must carry no rows, got %d", len(doc.Pages[0].Rows))
	}
	if doc.Pages[0].Footer != "CondoGest - Residencial Jardim | Página 1 de 1" {
		t.Errorf("unexpected footer %q", doc.Pages[0].Footer)
	}
}

func TestLayoutPagination(t *testing.T) {
	t.Run("single_page", func(t *testing.T) {
		doc := Layout(Spec{
			Context: testContext(),
			Columns: testColumns(),
			Rows:    makeRows(5),
			Slug:    "financeiro",
		})
		if len(doc.Pages) != 1 {
			t.Fatalf("expected 1 page, got %d", len(doc.Pages))
		}
		if len(doc.Pages[0].Rows) != 5 {
			t.Errorf("expected 5 rows, got %d", len(doc.Pages[0].Rows))
		}
	})

	t.Run("overflow_spills_to_following_pages", func(t *testing.T) {
		first := rowCapacity(true, true)
		rest := rowCapacity(false, false)
		total := first + rest + 3

		summary := money.Summary{Income: 100, Expense: 50, Balance: 50}
		doc := Layout(Spec{
			Context: testContext(),
			Columns: testColumns(),
			Rows:    makeRows(total),
			Summary: &summary,
			Slug:    "financeiro",
		})

		if len(doc.Pages) != 3 {
			t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
		}
		if len(doc.Pages[0].Rows) != first {
			t.Errorf("first page holds %d rows, want %d", len(doc.Pages[0].Rows), first)
		}
		if len(doc.Pages[1].Rows) != rest {
			t.Errorf("second page holds %d rows, want %d", len(doc.Pages[1].Rows), rest)
		}
		if len(doc.Pages[2].Rows) != 3 {
			t.Errorf("third page holds %d rows, want 3", len(doc.Pages[2].Rows))
		}

		// No rows lost or duplicated across the split.
		count := 0
		for _, page := range doc.Pages {
			count += len(page.Rows)
		}
		if count != total {
			t.Errorf("pages carry %d rows, want %d", count, total)
		}
	})

	t.Run("footers_carry_final_page_count", func(t *testing.T) {
		first := rowCapacity(true, false)
		rest := rowCapacity(false, false)

		doc := Layout(Spec{
			Context: testContext(),
			Columns: testColumns(),
			Rows:    makeRows(first + 2*rest),
			Slug:    "ocorrencias",
		})

		if len(doc.Pages) != 3 {
			t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
		}
		for i, page := range doc.Pages {
			want := fmt.Sprintf("CondoGest - Residencial Jardim | Página %d de 3", i+1)
			if page.Footer != want {
				t.Errorf("page %d footer %q, want %q", i+1, page.Footer, want)
			}
		}
	})

	t.Run("summary_shrinks_first_page", func(t *testing.T) {
		if rowCapacity(true, true) >= rowCapacity(true, false) {
			t.Error("summary panel must reduce first-page capacity")
		}
		if rowCapacity(true, false) >= rowCapacity(false, false) {
			t.Error("banner and title must reduce first-page capacity")
		}
	})
}

func TestLayoutDeterministic(t *testing.T) {
	spec := Spec{
		Context: testContext(),
		Columns: testColumns(),
		Rows:    makeRows(10),
		Summary: &money.Summary{Income: 125000, Expense: 45000, Balance: 80000},
		Slug:    "financeiro",
	}

	first := Layout(spec)
	second := Layout(spec)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical specs must lay out identically")
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		slug        string
		month, year int
		want        string
	}{
		{"financeiro", 12, 2025, "financeiro-12-2025.pdf"},
		{"agua", 1, 2026, "agua-1-2026.pdf"},
		{"reservas", 7, 2024, "reservas-7-2024.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.slug, tc.month, tc.year); got != tc.want {
			t.Errorf("Filename(%q, %d, %d) = %q, want %q", tc.slug, tc.month, tc.year, got, tc.want)
		}
	}
}

func TestContextDefaults(t *testing.T) {
	var c Context
	if c.Organization() != ProductName {
		t.Errorf("expected product name fallback, got %q", c.Organization())
	}
	if c.Subtitle() != DefaultSubtitle {
		t.Errorf("expected default subtitle, got %q", c.Subtitle())
	}
	if c.RequesterLine() != "Solicitado por: Administrador" {
		t.Errorf("unexpected requester line %q", c.RequesterLine())
	}
}
