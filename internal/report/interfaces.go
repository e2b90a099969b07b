package report

import (
	"context"

	"condogest/internal/document"
)

// Generator produces laid-out report documents.
type Generator interface {
	Generate(ctx context.Context, slug string, req Request) (*document.Document, error)
	Public(ctx context.Context, shareToken string) (*document.Document, error)
}

// ShareLinker issues public share links for financial reports.
type ShareLinker interface {
	Issue(ctx context.Context, bearer string, period Period) (*ShareLink, error)
}

var (
	_ Generator   = (*Orchestrator)(nil)
	_ ShareLinker = (*ShareIssuer)(nil)
)
