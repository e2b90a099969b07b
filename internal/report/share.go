package report

import (
	"context"
	"strings"

	apperrors "condogest/internal/errors"
	"condogest/internal/recordstore"
)

// publicViewerPath is the fixed path prefix of the public report viewer.
const publicViewerPath = "/relatorio-financeiro/"

// ShareLink is an issued share token together with its public URL.
type ShareLink struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
	URL       string `json:"url"`
}

// ShareIssuer requests signed, time-limited share tokens from the record
// store and composes public viewer URLs. Every call issues a fresh token;
// previously issued tokens stay valid until the upstream service expires
// them.
type ShareIssuer struct {
	store         recordstore.Client
	publicBaseURL string
}

// NewShareIssuer creates a ShareIssuer for the given public origin.
func NewShareIssuer(store recordstore.Client, publicBaseURL string) *ShareIssuer {
	return &ShareIssuer{store: store, publicBaseURL: publicBaseURL}
}

// Issue requests a share token for the period's financial report and
// returns it with the composed public URL.
func (s *ShareIssuer) Issue(ctx context.Context, bearer string, period Period) (*ShareLink, error) {
	token, err := s.store.IssueShareToken(ctx, bearer, period.Month, period.Year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrShareIssueFailed, err)
	}
	return &ShareLink{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
		URL:       ComposeURL(s.publicBaseURL, token.Token),
	}, nil
}

// ComposeURL builds the public viewer URL for a share token:
// "{origin}/relatorio-financeiro/{token}".
func ComposeURL(origin, token string) string {
	return strings.TrimSuffix(origin, "/") + publicViewerPath + token
}
