package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/server/http/middleware"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

type stubFacade struct {
	fetchErr     error
	fetchedTab   model.Tab
	fetchedRaw   usecase.RawFilterInput
	snapshot     dispatch.Snapshot
	confirmed    *model.OrderPage
	confirmedErr error
	order        *model.Order
	orderErr     error
	importResult usecase.ImportValidationResult
	importMeta   usecase.FileMeta
	receipt      *orderapi.UploadReceipt
	importErr    error
	page         *model.TransactionPage
	bill         *model.WalletTransaction
	billErr      error
	prefs        *model.Preferences
	prefsErr     error
	savedPrefs   *model.Preferences
}

func (s *stubFacade) ParseToken(string) (int64, error) { return 7, nil }

func (s *stubFacade) FetchOrders(_ context.Context, _ int64, tab model.Tab, raw usecase.RawFilterInput) error {
	s.fetchedTab = tab
	s.fetchedRaw = raw
	return s.fetchErr
}

func (s *stubFacade) OrdersSnapshot(int64) dispatch.Snapshot { return s.snapshot }

func (s *stubFacade) ConfirmedOrders(context.Context, usecase.RawFilterInput) (*model.OrderPage, error) {
	return s.confirmed, s.confirmedErr
}

func (s *stubFacade) OrderDetail(context.Context, string) (*model.Order, error) {
	return s.order, s.orderErr
}

func (s *stubFacade) ImportOrders(_ context.Context, meta usecase.FileMeta, _ []byte) (usecase.ImportValidationResult, *orderapi.UploadReceipt, error) {
	s.importMeta = meta
	return s.importResult, s.receipt, s.importErr
}

func (s *stubFacade) Transactions(context.Context, model.TransactionFilter) (*model.TransactionPage, error) {
	return s.page, s.billErr
}

func (s *stubFacade) TransactionByID(context.Context, int64) (*model.WalletTransaction, error) {
	return s.bill, s.billErr
}

func (s *stubFacade) Preferences(context.Context, int64) (*model.Preferences, error) {
	return s.prefs, s.prefsErr
}

func (s *stubFacade) SavePreferences(_ context.Context, prefs *model.Preferences) (*model.Preferences, error) {
	s.savedPrefs = prefs
	return prefs, s.prefsErr
}

func newTestContext(t *testing.T, method, target string, body *bytes.Buffer) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	c.Request = req
	c.Set(middleware.CustomerIDContextKey, int64(7))
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestOrdersListRendersSnapshot(t *testing.T) {
	facade := &stubFacade{
		snapshot: dispatch.Snapshot{
			State: dispatch.StateLoaded,
			Tab:   model.TabShipped,
			Orders: []model.Order{{
				OrderID:        3,
				OrderSerial:    "SP-3",
				Status:         model.OrderStatusOrdered,
				PaymentStatus:  model.PaymentStatusPaid,
				ShippingStatus: model.ShippingStatusShipped,
				DisputeStatus:  model.DisputeStatusNone,
				Products:       []model.LineItem{{ProductID: 1, Name: "Widget", Quantity: 2, UnitPrice: 5}},
				DatePurchased:  time.Now(),
			}},
			TotalCount: 31,
		},
	}

	handler := NewOrdersHandler(facade)
	c, rec := newTestContext(t, http.MethodGet, "/api/orders?tab=shipped&page=2&page_size=10&search=widget", nil)
	handler.List(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if facade.fetchedTab != model.TabShipped {
		t.Errorf("expected shipped tab, got %q", facade.fetchedTab)
	}
	if facade.fetchedRaw.Page != 2 || facade.fetchedRaw.PageSize != 10 || facade.fetchedRaw.SearchTerm != "widget" {
		t.Errorf("unexpected raw filters: %+v", facade.fetchedRaw)
	}

	var body struct {
		State      string `json:"state"`
		TotalCount int    `json:"total_count"`
		Orders     []struct {
			DisplayStatus struct {
				Label    string `json:"label"`
				Severity string `json:"severity"`
			} `json:"display_status"`
			Amount float64 `json:"amount"`
		} `json:"orders"`
	}
	decodeBody(t, rec, &body)

	if body.State != "loaded" || body.TotalCount != 31 {
		t.Errorf("unexpected page: %+v", body)
	}
	if len(body.Orders) != 1 {
		t.Fatalf("expected one order, got %d", len(body.Orders))
	}
	if body.Orders[0].DisplayStatus.Label != "Shipped" || body.Orders[0].DisplayStatus.Severity != "info" {
		t.Errorf("unexpected display status: %+v", body.Orders[0].DisplayStatus)
	}
	if body.Orders[0].Amount != 10 {
		t.Errorf("expected aggregated amount 10, got %v", body.Orders[0].Amount)
	}
}

func TestOrdersListRejectsUnknownTab(t *testing.T) {
	handler := NewOrdersHandler(&stubFacade{})
	c, rec := newTestContext(t, http.MethodGet, "/api/orders?tab=bogus", nil)
	handler.List(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrdersListFailureKeepsPreviousPage(t *testing.T) {
	facade := &stubFacade{
		fetchErr: domainErrors.ErrNetwork,
		snapshot: dispatch.Snapshot{
			State:      dispatch.StateFailed,
			Tab:        model.TabAll,
			Orders:     []model.Order{{OrderID: 1, Status: model.OrderStatusProcessing, PaymentStatus: model.PaymentStatusPaid}},
			TotalCount: 1,
			Err:        domainErrors.ErrNetwork,
		},
	}

	handler := NewOrdersHandler(facade)
	c, rec := newTestContext(t, http.MethodGet, "/api/orders", nil)
	handler.List(c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var body struct {
		Error  string `json:"error"`
		Orders []any  `json:"orders"`
	}
	decodeBody(t, rec, &body)
	if body.Error == "" {
		t.Error("expected error message in body")
	}
	if len(body.Orders) != 1 {
		t.Errorf("expected previous page to remain rendered, got %d orders", len(body.Orders))
	}
}

func TestOrdersConfirmed(t *testing.T) {
	facade := &stubFacade{
		confirmed: &model.OrderPage{
			Orders:     []model.Order{{OrderID: 2, Status: model.OrderStatusOrdered, PaymentStatus: model.PaymentStatusPaid}},
			TotalCount: 9,
		},
	}

	handler := NewOrdersHandler(facade)
	c, rec := newTestContext(t, http.MethodGet, "/api/orders/confirmed", nil)
	handler.Confirmed(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		TotalCount int `json:"total_count"`
		Orders     []struct {
			DisplayStatus struct {
				Label string `json:"label"`
			} `json:"display_status"`
		} `json:"orders"`
	}
	decodeBody(t, rec, &body)
	if body.TotalCount != 9 || len(body.Orders) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Orders[0].DisplayStatus.Label != "Confirmed" {
		t.Errorf("unexpected label %q", body.Orders[0].DisplayStatus.Label)
	}
}

func TestOrderDetailStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"unauthorized", domainErrors.ErrUnauthorized, http.StatusUnauthorized},
		{"upstream down", domainErrors.ErrServer, http.StatusBadGateway},
		{"network", domainErrors.ErrNetwork, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrdersHandler(&stubFacade{orderErr: tc.err})
			c, rec := newTestContext(t, http.MethodGet, "/api/orders/5", nil)
			c.Params = gin.Params{{Key: "id", Value: "5"}}
			handler.Detail(c)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
		})
	}
}

func TestOrderDetailSuccess(t *testing.T) {
	facade := &stubFacade{order: &model.Order{
		OrderID:       6,
		OrderSerial:   "SP-6",
		Status:        model.OrderStatusCancelled,
		PaymentStatus: model.PaymentStatusPaid,
		DeliveryName:  "Jo Doe",
		Total:         44.5,
	}}

	handler := NewOrdersHandler(facade)
	c, rec := newTestContext(t, http.MethodGet, "/api/orders/6", nil)
	c.Params = gin.Params{{Key: "id", Value: "6"}}
	handler.Detail(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		DisplayStatus struct {
			Label    string `json:"label"`
			Severity string `json:"severity"`
		} `json:"display_status"`
		DeliveryName string  `json:"delivery_name"`
		Amount       float64 `json:"amount"`
	}
	decodeBody(t, rec, &body)
	if body.DisplayStatus.Label != "Cancelled" || body.DisplayStatus.Severity != "danger" {
		t.Errorf("unexpected display status: %+v", body.DisplayStatus)
	}
	if body.DeliveryName != "Jo Doe" || body.Amount != 44.5 {
		t.Errorf("unexpected detail: %+v", body)
	}
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestImportUploadInvalidFile(t *testing.T) {
	facade := &stubFacade{importResult: usecase.ImportValidationResult{
		Valid:  false,
		Errors: []string{"missing required column \"sku\""},
	}}

	handler := NewImportHandler(facade)
	body, contentType := multipartBody(t, "orders.csv", "order-id\n123\n")
	c, rec := newTestContext(t, http.MethodPost, "/api/orders/import", body)
	c.Request.Header.Set("Content-Type", contentType)
	handler.Upload(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	if resp.Valid || len(resp.Errors) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if facade.importMeta.Name != "orders.csv" {
		t.Errorf("expected filename to reach facade, got %q", facade.importMeta.Name)
	}
}

func TestImportUploadSuccess(t *testing.T) {
	facade := &stubFacade{
		importResult: usecase.ImportValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}},
		receipt:      &orderapi.UploadReceipt{Accepted: true, OrdersProcessed: 3, Message: "imported"},
	}

	handler := NewImportHandler(facade)
	body, contentType := multipartBody(t, "orders.csv", "header\nrow\n")
	c, rec := newTestContext(t, http.MethodPost, "/api/orders/import", body)
	c.Request.Header.Set("Content-Type", contentType)
	handler.Upload(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Valid           bool   `json:"valid"`
		OrdersProcessed int    `json:"orders_processed"`
		Message         string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	if !resp.Valid || resp.OrdersProcessed != 3 || resp.Message != "imported" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestImportUploadMissingFile(t *testing.T) {
	handler := NewImportHandler(&stubFacade{})
	c, rec := newTestContext(t, http.MethodPost, "/api/orders/import", bytes.NewBufferString("plain"))
	c.Request.Header.Set("Content-Type", "text/plain")
	handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWalletList(t *testing.T) {
	facade := &stubFacade{page: &model.TransactionPage{
		Bills: []model.WalletTransaction{{ID: 1, BillType: "payout", Amount: 10}},
		Total: 1,
		Page:  1,
		Pages: 1,
	}}

	handler := NewWalletHandler(facade)
	c, rec := newTestContext(t, http.MethodGet, "/api/wallet/bills?page=1&bill_type=payout", nil)
	handler.List(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Bills []struct {
			BillType string `json:"bill_type"`
		} `json:"bills"`
		Total int `json:"total"`
	}
	decodeBody(t, rec, &resp)
	if resp.Total != 1 || len(resp.Bills) != 1 || resp.Bills[0].BillType != "payout" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWalletDetailRejectsBadID(t *testing.T) {
	handler := NewWalletHandler(&stubFacade{})
	for _, raw := range []string{"abc", "0", "-1"} {
		c, rec := newTestContext(t, http.MethodGet, "/api/wallet/bills/"+raw, nil)
		c.Params = gin.Params{{Key: "id", Value: raw}}
		handler.Detail(c)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", raw, rec.Code)
		}
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	facade := &stubFacade{prefs: &model.Preferences{CustomerID: 7, DefaultPageSize: 20}}
	handler := NewPreferencesHandler(facade)

	c, rec := newTestContext(t, http.MethodGet, "/api/preferences", nil)
	handler.Get(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	payload := bytes.NewBufferString(`{"onboarding_completed":true,"default_page_size":50,"recent_only":true}`)
	c, rec = newTestContext(t, http.MethodPut, "/api/preferences", payload)
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Put(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if facade.savedPrefs == nil || facade.savedPrefs.CustomerID != 7 || !facade.savedPrefs.RecentOnly {
		t.Errorf("unexpected saved preferences: %+v", facade.savedPrefs)
	}
}

func TestPreferencesPutRejectsMalformedJSON(t *testing.T) {
	handler := NewPreferencesHandler(&stubFacade{})
	c, rec := newTestContext(t, http.MethodPut, "/api/preferences", bytes.NewBufferString("{nope"))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Put(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCurrentCustomerIDFallsBackToZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))

	if id := CurrentCustomerID(c); id != 0 {
		t.Errorf("expected 0 without auth, got %d", id)
	}
}
