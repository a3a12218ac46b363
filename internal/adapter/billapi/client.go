package billapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/pkg/auth"
)

// Client exposes read operations of the external bill service.
type Client interface {
	Transactions(ctx context.Context, filter model.TransactionFilter) (*model.TransactionPage, error)
	TransactionByID(ctx context.Context, billID int64) (*model.WalletTransaction, error)
}

// HTTPClient implements Client via the bill service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a bill service client with the given timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse bill service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("bill service url must be absolute")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Transactions fetches one page of wallet history.
func (c *HTTPClient) Transactions(ctx context.Context, filter model.TransactionFilter) (*model.TransactionPage, error) {
	params := url.Values{}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(filter.PageSize))
	}
	if filter.BillType != "" {
		params.Set("bill_type", filter.BillType)
	}
	if filter.StartDate != "" {
		params.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("end_date", filter.EndDate)
	}
	if filter.OrderID != "" {
		params.Set("order_id", filter.OrderID)
	}

	body, err := c.get(ctx, "/bills", params)
	if err != nil {
		return nil, err
	}

	var page model.TransactionPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode transaction page: %v", domainErrors.ErrServer, err)
	}
	if page.Bills == nil {
		page.Bills = []model.WalletTransaction{}
	}
	return &page, nil
}

// TransactionByID fetches a single bill entry.
func (c *HTTPClient) TransactionByID(ctx context.Context, billID int64) (*model.WalletTransaction, error) {
	body, err := c.get(ctx, path.Join("/bills", strconv.FormatInt(billID, 10)), nil)
	if err != nil {
		return nil, err
	}

	var bill model.WalletTransaction
	if err := json.Unmarshal(body, &bill); err != nil {
		return nil, fmt.Errorf("%w: decode transaction: %v", domainErrors.ErrServer, err)
	}
	return &bill, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if params != nil {
		target.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := auth.TokenFromContext(ctx); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classify(resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) classify(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: bill service rejected credentials", domainErrors.ErrUnauthorized)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: bill service has no such resource", domainErrors.ErrNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domainErrors.ErrValidation, detailMessage(body))
	case status >= http.StatusInternalServerError:
		c.logger.Error("bill service request failed", slog.Int("status", status), slog.String("body", string(body)))
		return fmt.Errorf("%w: bill service returned %d", domainErrors.ErrServer, status)
	default:
		c.logger.Error("bill service request failed", slog.Int("status", status), slog.String("body", string(body)))
		return fmt.Errorf("%w: unexpected status %d", domainErrors.ErrServer, status)
	}
}

func detailMessage(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return "request rejected"
}
