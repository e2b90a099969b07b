package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"condogest/internal/document"
	apperrors "condogest/internal/errors"
	"condogest/internal/middleware"
	"condogest/internal/report"
)

// ReportHandler serves report generation and share-link issuance.
type ReportHandler struct {
	orchestrator report.Generator
	issuer       report.ShareLinker
	painter      document.Painter
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(orchestrator report.Generator, issuer report.ShareLinker) *ReportHandler {
	return &ReportHandler{orchestrator: orchestrator, issuer: issuer}
}

// PeriodQuery holds the report period parsed from query strings.
type PeriodQuery struct {
	Month    int    `form:"month" binding:"required,report_month"`
	Year     int    `form:"year" binding:"required,report_year"`
	Category string `form:"category"`
}

// Generate produces a report PDF for the requested period
// @Summary     Generate a report
// @Description Generate a PDF report (financeiro, ocorrencias, agua, or reservas) for a month and year. The category filter applies to the financial and occurrence reports.
// @Tags        reports
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       slug     path  string true  "Report slug" Enums(financeiro, ocorrencias, agua, reservas)
// @Param       month    query int    true  "Month (1-12)"
// @Param       year     query int    true  "Year"
// @Param       category query string false "Category filter ('all' disables it)"
// @Success     200 {file} file "PDF document"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Unknown report type"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /reports/{slug} [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period := report.Period{Month: query.Month, Year: query.Year, Category: query.Category}
	req := operatorRequest(c, period)

	doc, err := h.orchestrator.Generate(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.painter.Paint(doc, &buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ShareRequest is the body for issuing a share link.
type ShareRequest struct {
	Month int `json:"month" binding:"required,report_month"`
	Year  int `json:"year" binding:"required,report_year"`
}

// Share issues a public share link for a financial report
// @Summary     Share a financial report
// @Description Issue a time-limited public link for one month's financial report. Every call issues a fresh token; earlier tokens stay valid until they expire upstream.
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ShareRequest true "Report period"
// @Success     201 {object} report.ShareLink "Issued share link"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Share issuance failed"
// @Router      /reports/financeiro/share [post]
func (h *ReportHandler) Share(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bearer := c.GetString(middleware.ContextBearerToken)
	link, err := h.issuer.Issue(c.Request.Context(), bearer, report.Period{Month: req.Month, Year: req.Year})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"share": link})
}
