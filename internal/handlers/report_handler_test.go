package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"condogest/internal/document"
	apperrors "condogest/internal/errors"
	"condogest/internal/middleware"
	"condogest/internal/report"
	"condogest/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// testOperator injects the context values the auth middleware would set.
func testOperator(c *gin.Context) {
	c.Set(middleware.ContextBearerToken, "operator-token")
	c.Set(middleware.ContextOperatorName, "Maria Silva")
	c.Set(middleware.ContextOrganization, "Residencial Jardim")
	c.Set(middleware.ContextAddress, "Rua das Flores, 100")
	c.Next()
}

func reportRouter(h *ReportHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/v1", testOperator)
	group.GET("/reports/:slug", h.Generate)
	group.POST("/reports/financeiro/share", h.Share)
	return router
}

func sampleDocument(slug string, month, year int) *document.Document {
	return document.Layout(document.Spec{
		Context: document.Context{
			Title:            "Relatório Financeiro",
			OrganizationName: "Residencial Jardim",
			Month:            month,
			Year:             year,
		},
		Columns: []document.Column{{Header: "Data", Width: 190, Align: "L"}},
		Rows:    []document.Row{{"01/12/2025"}},
		Slug:    slug,
	})
}

func TestGenerateEndpoint(t *testing.T) {
	t.Run("serves_pdf_attachment", func(t *testing.T) {
		gen := &mockGenerator{
			generateFn: func(ctx context.Context, slug string, req report.Request) (*document.Document, error) {
				if slug != "financeiro" {
					t.Errorf("unexpected slug %s", slug)
				}
				if req.Bearer != "operator-token" || req.RequestedBy != "Maria Silva" {
					t.Errorf("request not assembled from auth context: %+v", req)
				}
				if req.Period.Month != 12 || req.Period.Year != 2025 || req.Period.Category != "all" {
					t.Errorf("unexpected period: %+v", req.Period)
				}
				return sampleDocument(slug, req.Period.Month, req.Period.Year), nil
			},
		}
		router := reportRouter(NewReportHandler(gen, &mockLinker{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/financeiro?month=12&year=2025&category=all", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="financeiro-12-2025.pdf"` {
			t.Errorf("unexpected disposition %q", got)
		}
		if !strings.HasPrefix(w.Body.String(), "%PDF-") {
			t.Error("body is not a PDF")
		}
	})

	t.Run("rejects_invalid_month_before_generation", func(t *testing.T) {
		gen := &mockGenerator{
			generateFn: func(ctx context.Context, slug string, req report.Request) (*document.Document, error) {
				t.Error("generator must not run for an invalid period")
				return nil, nil
			},
		}
		router := reportRouter(NewReportHandler(gen, &mockLinker{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/financeiro?month=13&year=2025", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown_slug_is_404", func(t *testing.T) {
		gen := &mockGenerator{
			generateFn: func(ctx context.Context, slug string, req report.Request) (*document.Document, error) {
				return nil, apperrors.ErrUnknownReport
			},
		}
		router := reportRouter(NewReportHandler(gen, &mockLinker{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/boletos?month=1&year=2025", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		var body map[string]map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["error"]["code"] != "UNKNOWN_REPORT" {
			t.Errorf("unexpected error code %q", body["error"]["code"])
		}
	})

	t.Run("upstream_failure_is_502", func(t *testing.T) {
		gen := &mockGenerator{
			generateFn: func(ctx context.Context, slug string, req report.Request) (*document.Document, error) {
				return nil, apperrors.ErrRecordStoreUnavailable
			},
		}
		router := reportRouter(NewReportHandler(gen, &mockLinker{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/agua?month=6&year=2025", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}

func TestShareEndpoint(t *testing.T) {
	t.Run("issues_link", func(t *testing.T) {
		linker := &mockLinker{
			issueFn: func(ctx context.Context, bearer string, period report.Period) (*report.ShareLink, error) {
				if bearer != "operator-token" {
					t.Errorf("unexpected bearer %q", bearer)
				}
				if period.Month != 11 || period.Year != 2025 {
					t.Errorf("unexpected period %+v", period)
				}
				return &report.ShareLink{
					Token:     "signed",
					ExpiresIn: "7 dias",
					URL:       "https://condogest.app/relatorio-financeiro/signed",
				}, nil
			},
		}
		router := reportRouter(NewReportHandler(&mockGenerator{}, linker))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/financeiro/share",
			strings.NewReader(`{"month":11,"year":2025}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Share report.ShareLink `json:"share"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Share.URL != "https://condogest.app/relatorio-financeiro/signed" {
			t.Errorf("unexpected URL %s", body.Share.URL)
		}
	})

	t.Run("rejects_missing_period", func(t *testing.T) {
		linker := &mockLinker{
			issueFn: func(ctx context.Context, bearer string, period report.Period) (*report.ShareLink, error) {
				t.Error("issuer must not run for an invalid body")
				return nil, nil
			},
		}
		router := reportRouter(NewReportHandler(&mockGenerator{}, linker))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/financeiro/share",
			strings.NewReader(`{"month":11}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issue_failure_is_502", func(t *testing.T) {
		linker := &mockLinker{
			issueFn: func(ctx context.Context, bearer string, period report.Period) (*report.ShareLink, error) {
				return nil, apperrors.ErrShareIssueFailed
			},
		}
		router := reportRouter(NewReportHandler(&mockGenerator{}, linker))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/financeiro/share",
			strings.NewReader(`{"month":11,"year":2025}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}
