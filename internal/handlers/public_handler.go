package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"condogest/internal/document"
	"condogest/internal/report"
)

// PublicReportHandler serves the unauthenticated share-link viewer.
type PublicReportHandler struct {
	orchestrator report.Generator
	painter      document.Painter
}

// NewPublicReportHandler creates a new PublicReportHandler.
func NewPublicReportHandler(orchestrator report.Generator) *PublicReportHandler {
	return &PublicReportHandler{orchestrator: orchestrator}
}

// View renders a shared financial report
// @Summary     View a shared financial report
// @Description Render the financial report PDF behind a share token. No authentication; the condominium API validates the token and its expiry.
// @Tags        public
// @Produce     application/pdf
// @Param       token path string true "Share token"
// @Success     200 {file} file "PDF document"
// @Failure     403 {object} ErrorResponse "Invalid or expired share token"
// @Router      /relatorio-financeiro/{token} [get]
func (h *PublicReportHandler) View(c *gin.Context) {
	doc, err := h.orchestrator.Public(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.painter.Paint(doc, &buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
