package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/pkg/auth"
)

// UploadReceipt is the order service's answer to a bulk import upload.
type UploadReceipt struct {
	Accepted        bool   `json:"-"`
	OrdersProcessed int    `json:"orders_processed"`
	Message         string `json:"message"`
}

// Client exposes read and upload operations of the external order service.
type Client interface {
	Retrieve(ctx context.Context, op model.Operation, filters model.FilterSet) (*model.OrderPage, error)
	OrderByID(ctx context.Context, orderID string) (*model.Order, error)
	Upload(ctx context.Context, filename string, content []byte) (*UploadReceipt, error)
}

// HTTPClient implements Client via the order service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an order service client with the given timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order service url must be absolute")
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

func endpointForOperation(op model.Operation) (string, bool) {
	switch op {
	case model.OperationAll:
		return "/orders/get-all-orders", true
	case model.OperationConfirmed:
		return "/orders/get-confirmed-orders", true
	case model.OperationUnpaid:
		return "/orders/get-unpaid-orders", true
	case model.OperationAwaitingShipment:
		return "/orders/get-unshipped-orders", true
	case model.OperationShipped:
		return "/orders/get-shipped-orders", true
	case model.OperationTicketed:
		return "/orders/get-returned-orders", true
	case model.OperationCancelled:
		return "/orders/get-cancelled-orders", true
	case model.OperationAbnormal:
		return "/orders/get-abnormal-orders", true
	default:
		return "", false
	}
}

func queryValues(filters model.FilterSet) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(filters.Page))
	params.Set("page_size", strconv.Itoa(filters.PageSize))
	params.Set("store_by", filters.SortBy)
	if filters.FromDate != "" {
		params.Set("from_date", filters.FromDate)
	}
	if filters.ToDate != "" {
		params.Set("to_date", filters.ToDate)
	}
	if filters.SearchTerm != "" {
		params.Set("order_search_item", filters.SearchTerm)
	}
	if filters.MarketplaceSource != "" {
		params.Set("source_option", filters.MarketplaceSource)
	}
	return params
}

// Retrieve fetches one page of orders for the given operation.
func (c *HTTPClient) Retrieve(ctx context.Context, op model.Operation, filters model.FilterSet) (*model.OrderPage, error) {
	endpoint, ok := endpointForOperation(op)
	if !ok {
		return nil, fmt.Errorf("%w: unknown retrieval operation %q", domainErrors.ErrValidation, op)
	}

	body, err := c.get(ctx, endpoint, queryValues(filters))
	if err != nil {
		return nil, err
	}

	var page model.OrderPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode order page: %v", domainErrors.ErrServer, err)
	}
	if page.Orders == nil {
		page.Orders = []model.Order{}
	}
	return &page, nil
}

// OrderByID fetches a single order.
func (c *HTTPClient) OrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	body, err := c.get(ctx, path.Join("/orders/order", orderID), nil)
	if err != nil {
		return nil, err
	}

	var order model.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: decode order: %v", domainErrors.ErrServer, err)
	}
	return &order, nil
}

// Upload submits a pre-validated import file as multipart/form-data. The
// caller is responsible for running local validation first.
func (c *HTTPClient) Upload(ctx context.Context, filename string, content []byte) (*UploadReceipt, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload payload: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("build upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload payload: %w", err)
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/orders/upload")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

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

	receipt := UploadReceipt{Accepted: true}
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("%w: decode upload receipt: %v", domainErrors.ErrServer, err)
	}
	return &receipt, nil
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
	c.authorize(ctx, req)

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

func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) {
	if token, ok := auth.TokenFromContext(ctx); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// errorDetail mirrors the service's error body.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *HTTPClient) classify(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: order service rejected credentials", domainErrors.ErrUnauthorized)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: order service has no such resource", domainErrors.ErrNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domainErrors.ErrValidation, detailMessage(body))
	case status >= http.StatusInternalServerError:
		c.logger.Error("order service request failed", slog.Int("status", status), slog.String("body", string(body)))
		return fmt.Errorf("%w: order service returned %d", domainErrors.ErrServer, status)
	default:
		c.logger.Error("order service request failed", slog.Int("status", status), slog.String("body", string(body)))
		return fmt.Errorf("%w: unexpected status %d", domainErrors.ErrServer, status)
	}
}

func detailMessage(body []byte) string {
	var parsed errorDetail
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Detail) > 0 {
		var single string
		if err := json.Unmarshal(parsed.Detail, &single); err == nil {
			return single
		}
		var many []string
		if err := json.Unmarshal(parsed.Detail, &many); err == nil && len(many) > 0 {
			return many[0]
		}
	}
	return "request rejected"
}
