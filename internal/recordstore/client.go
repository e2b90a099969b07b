// Package recordstore provides the HTTP client for the condominium
// management API. The reporting pipeline is stateless: every report pulls
// fresh records through this client, and all period narrowing happens
// client-side.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "condogest/internal/errors"
	"condogest/internal/models"
)

// Client abstracts the condominium API operations consumed by the
// reporting service. Authenticated calls forward the operator's bearer
// token; GetPublicReport is token-scoped and needs no authentication.
type Client interface {
	ListTransactions(ctx context.Context, bearer string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, bearer string, payload TransactionPayload) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, bearer, id string, payload TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, bearer, id string) error
	GetFinancialSummary(ctx context.Context, bearer string, month, year int) (*models.FinancialSummary, error)
	IssueShareToken(ctx context.Context, bearer string, month, year int) (*models.ShareToken, error)
	GetPublicReport(ctx context.Context, shareToken string) (*models.PublicReport, error)
	ListOccurrences(ctx context.Context, bearer string) ([]models.Occurrence, error)
	ListWaterReadings(ctx context.Context, bearer string) ([]models.Reading, error)
	ListUnits(ctx context.Context, bearer string) ([]models.Unit, error)
	ListReservations(ctx context.Context, bearer string) ([]models.Reservation, error)
	ListUsers(ctx context.Context, bearer string) ([]models.User, error)
	ListCommonAreas(ctx context.Context, bearer string) ([]models.CommonArea, error)
}

// TransactionPayload is the body for creating a transaction.
type TransactionPayload struct {
	Direction   models.TransactionDirection `json:"type"`
	Description string                      `json:"description"`
	Amount      string                      `json:"amount"`
	Category    string                      `json:"category"`
	Date        string                      `json:"date"`
	Status      models.TransactionStatus    `json:"status"`
	Observation string                      `json:"observation,omitempty"`
}

// TransactionUpdate is the partial body for editing a transaction.
// Nil fields are left unchanged by the server.
type TransactionUpdate struct {
	Direction   *models.TransactionDirection `json:"type,omitempty"`
	Description *string                      `json:"description,omitempty"`
	Amount      *string                      `json:"amount,omitempty"`
	Category    *string                      `json:"category,omitempty"`
	Date        *string                      `json:"date,omitempty"`
	Status      *models.TransactionStatus    `json:"status,omitempty"`
	Observation *string                      `json:"observation,omitempty"`
}

// httpClient is the HTTP implementation of Client.
type httpClient struct {
	baseURL string
	client  *http.Client
}

// New creates a Client against the given base URL.
func New(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) ListTransactions(ctx context.Context, bearer string) ([]models.Transaction, error) {
	var out []models.Transaction
	err := c.do(ctx, http.MethodGet, "/transactions", bearer, nil, &out)
	return out, err
}

func (c *httpClient) CreateTransaction(ctx context.Context, bearer string, payload TransactionPayload) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", bearer, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) UpdateTransaction(ctx context.Context, bearer, id string, payload TransactionUpdate) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), bearer, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) DeleteTransaction(ctx context.Context, bearer, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), bearer, nil, nil)
}

func (c *httpClient) GetFinancialSummary(ctx context.Context, bearer string, month, year int) (*models.FinancialSummary, error) {
	var out models.FinancialSummary
	path := "/reports/summary?month=" + strconv.Itoa(month) + "&year=" + strconv.Itoa(year)
	if err := c.do(ctx, http.MethodGet, path, bearer, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) IssueShareToken(ctx context.Context, bearer string, month, year int) (*models.ShareToken, error) {
	body := map[string]int{"month": month, "year": year}
	var out models.ShareToken
	if err := c.do(ctx, http.MethodPost, "/reports/share", bearer, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetPublicReport(ctx context.Context, shareToken string) (*models.PublicReport, error) {
	var out models.PublicReport
	err := c.do(ctx, http.MethodGet, "/reports/public/"+url.PathEscape(shareToken), "", nil, &out)
	if err != nil {
		// Any denial from the upstream token validator surfaces as an
		// invalid or expired link, preserving the server-supplied reason.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == upstreamErrorCode {
			if appErr.Message != "" {
				return nil, apperrors.WithMessage(apperrors.ErrShareTokenDenied, appErr.Message)
			}
			return nil, apperrors.ErrShareTokenDenied
		}
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListOccurrences(ctx context.Context, bearer string) ([]models.Occurrence, error) {
	var out []models.Occurrence
	err := c.do(ctx, http.MethodGet, "/occurrences", bearer, nil, &out)
	return out, err
}

func (c *httpClient) ListWaterReadings(ctx context.Context, bearer string) ([]models.Reading, error) {
	var out []models.Reading
	err := c.do(ctx, http.MethodGet, "/water-readings", bearer, nil, &out)
	return out, err
}

func (c *httpClient) ListUnits(ctx context.Context, bearer string) ([]models.Unit, error) {
	var out []models.Unit
	err := c.do(ctx, http.MethodGet, "/units", bearer, nil, &out)
	return out, err
}

func (c *httpClient) ListReservations(ctx context.Context, bearer string) ([]models.Reservation, error) {
	var out []models.Reservation
	err := c.do(ctx, http.MethodGet, "/reservations", bearer, nil, &out)
	return out, err
}

func (c *httpClient) ListUsers(ctx context.Context, bearer string) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/users", bearer, nil, &out)
	return out, err
}

func (c *httpClient) ListCommonAreas(ctx context.Context, bearer string) ([]models.CommonArea, error) {
	var out []models.CommonArea
	err := c.do(ctx, http.MethodGet, "/common-areas", bearer, nil, &out)
	return out, err
}

// upstreamErrorCode marks AppErrors whose message came from the upstream
// error envelope rather than a local sentinel.
const upstreamErrorCode = "UPSTREAM"

// do performs one JSON request against the condominium API and decodes
// the response into out (when out is non-nil).
func (c *httpClient) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRecordStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrRecordStoreUnavailable,
			fmt.Errorf("decoding %s %s response: %w", method, path, err))
	}
	return nil
}

// errorFromResponse maps a non-2xx upstream response to an AppError,
// keeping the upstream message when the body carries one.
func (c *httpClient) errorFromResponse(resp *http.Response) error {
	message := upstreamMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &apperrors.AppError{Code: upstreamErrorCode, Message: message, StatusCode: http.StatusUnauthorized}
	case http.StatusForbidden:
		return &apperrors.AppError{Code: upstreamErrorCode, Message: message, StatusCode: http.StatusForbidden}
	case http.StatusNotFound:
		return &apperrors.AppError{Code: upstreamErrorCode, Message: message, StatusCode: http.StatusNotFound}
	case http.StatusBadRequest:
		if message != "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, message)
		}
		return apperrors.ErrInvalidInput
	default:
		return apperrors.Wrap(apperrors.ErrRecordStoreUnavailable,
			fmt.Errorf("record store returned status %d", resp.StatusCode))
	}
}

// upstreamMessage extracts a human-readable reason from the upstream
// error envelope, accepting both {"error":{"message":...}} and
// {"message":...} shapes.
func upstreamMessage(body io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return envelope.Message
}
