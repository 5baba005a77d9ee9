package http_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apihttp "rentdesk-backend/internal/api/http"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository/memory"
	"rentdesk-backend/internal/service"
	"rentdesk-backend/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	clock := service.NewSystemClock(time.UTC)

	files, err := storage.NewLocalStorage(storage.Config{
		UploadDir:    t.TempDir(),
		BaseURL:      "http://localhost:8080/api/v1/files",
		MaxBytes:     1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
	})
	require.NoError(t, err)

	return apihttp.NewRouter(apihttp.Services{
		Customers: service.NewCustomerService(store),
		Inventory: service.NewInventoryService(store),
		Rentals:   service.NewRentalService(store, clock),
		Sales:     service.NewSaleService(store, clock),
		Payments:  service.NewPaymentService(store, clock),
		Notes:     service.NewNoteService(store),
		Reports:   service.NewReportService(store, clock),
		Files:     files,
	}, apihttp.Options{Location: time.UTC, MaxUploadBytes: 1 << 20})
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Ref     string `json:"ref"`
	} `json:"error"`
}

func createCustomer(t *testing.T, h http.Handler) domain.Customer {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/customers", map[string]string{"name": "John Doe", "phone": "01700000000"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c domain.Customer
	decodeBody(t, rec, &c)
	return c
}

func createItem(t *testing.T, h http.Handler, name string, rate, quantity int) domain.StockedItem {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/items", map[string]interface{}{
		"name":           name,
		"dailyRentPrice": rate,
		"sellingPrice":   rate * 10,
		"totalQuantity":  quantity,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var item domain.StockedItem
	decodeBody(t, rec, &item)
	return item
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCustomerCRUD(t *testing.T) {
	h := newTestServer(t)
	c := createCustomer(t, h)

	rec := do(t, h, http.MethodPut, "/api/v1/customers/"+c.ID, map[string]string{"address": "Dhaka"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Customer
	decodeBody(t, rec, &updated)
	assert.Equal(t, "John Doe", updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Dhaka", *updated.Address)

	rec = do(t, h, http.MethodDelete, "/api/v1/customers/"+c.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/customers/"+c.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var e errorResponse
	decodeBody(t, rec, &e)
	assert.Equal(t, "NOT_FOUND", e.Error.Code)
}

func TestCreateCustomerRejectsUnknownFields(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/customers", map[string]string{"name": "A", "phone": "1", "email": "x"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCustomerMissingPhone(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/customers", map[string]string{"name": "A"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e errorResponse
	decodeBody(t, rec, &e)
	assert.Equal(t, "VALIDATION", e.Error.Code)
	assert.Equal(t, "phone", e.Error.Ref)
}

func TestRentalFlow(t *testing.T) {
	h := newTestServer(t)
	c := createCustomer(t, h)
	a := createItem(t, h, "LED Par Light", 100, 2)
	b := createItem(t, h, "Wireless Mic", 50, 1)

	rec := do(t, h, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
		"customerId":         c.ID,
		"rentDate":           "2099-01-01",
		"expectedReturnDate": "2099-01-04",
		"items": []map[string]interface{}{
			{"itemId": a.ID, "quantity": 2},
			{"itemId": b.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rental domain.Rental
	decodeBody(t, rec, &rental)
	assert.True(t, decimal.NewFromInt(750).Equal(rental.TotalAmount))
	assert.Equal(t, domain.RentalStatusActive, rental.Status)

	rec = do(t, h, http.MethodGet, "/api/v1/items/"+a.ID, nil)
	var stocked domain.StockedItem
	decodeBody(t, rec, &stocked)
	assert.Equal(t, 0, stocked.Available)

	rec = do(t, h, http.MethodPost, "/api/v1/rentals/"+rental.ID+"/return", map[string]interface{}{"itemIds": []string{b.ID}})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &rental)
	assert.Equal(t, domain.RentalStatusPartial, rental.Status)

	rec = do(t, h, http.MethodPost, "/api/v1/payments", map[string]interface{}{"rentalId": rental.ID, "amount": 300})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/rentals/"+rental.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail service.RentalDetail
	decodeBody(t, rec, &detail)
	assert.True(t, decimal.NewFromInt(450).Equal(detail.Due))
	assert.Len(t, detail.Payments, 1)

	rec = do(t, h, http.MethodGet, "/api/v1/rentals?status=Partial%20Return&customer_id="+c.ID, nil)
	var rentals []domain.Rental
	decodeBody(t, rec, &rentals)
	assert.Len(t, rentals, 1)

	rec = do(t, h, http.MethodGet, "/api/v1/payments?rental_id="+rental.ID, nil)
	var payments []domain.Payment
	decodeBody(t, rec, &payments)
	assert.Len(t, payments, 1)
}

func TestCreateRentalErrors(t *testing.T) {
	h := newTestServer(t)
	c := createCustomer(t, h)
	a := createItem(t, h, "Projector 4K", 5000, 2)

	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
		code   string
	}{
		{
			name:   "insufficient stock",
			body:   map[string]interface{}{"customerId": c.ID, "expectedReturnDate": "2099-01-04", "items": []map[string]interface{}{{"itemId": a.ID, "quantity": 3}}},
			status: http.StatusConflict,
			code:   "INSUFFICIENT_STOCK",
		},
		{
			name:   "empty item list",
			body:   map[string]interface{}{"customerId": c.ID, "expectedReturnDate": "2099-01-04", "items": []map[string]interface{}{}},
			status: http.StatusUnprocessableEntity,
			code:   "EMPTY_OPERATION",
		},
		{
			name:   "unknown customer",
			body:   map[string]interface{}{"customerId": "missing", "expectedReturnDate": "2099-01-04", "items": []map[string]interface{}{{"itemId": a.ID, "quantity": 1}}},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "bad date",
			body:   map[string]interface{}{"customerId": c.ID, "expectedReturnDate": "04/01/2099", "items": []map[string]interface{}{{"itemId": a.ID, "quantity": 1}}},
			status: http.StatusBadRequest,
			code:   "VALIDATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/rentals", tt.body)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			var e errorResponse
			decodeBody(t, rec, &e)
			assert.Equal(t, tt.code, e.Error.Code)
		})
	}
}

func TestCreateRentalDueTodayWithoutRentDate(t *testing.T) {
	h := newTestServer(t)
	c := createCustomer(t, h)
	a := createItem(t, h, "Projector 4K", 5000, 2)
	today := time.Now().UTC().Format(time.DateOnly)

	rec := do(t, h, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
		"customerId":         c.ID,
		"expectedReturnDate": today,
		"items":              []map[string]interface{}{{"itemId": a.ID, "quantity": 1}},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rental domain.Rental
	decodeBody(t, rec, &rental)
	assert.Equal(t, 1, rental.DurationDays())
	assert.True(t, decimal.NewFromInt(5000).Equal(rental.TotalAmount))
	assert.Equal(t, today, rental.RentDate.UTC().Format(time.DateOnly))
}

func TestListRentalsNewestFirst(t *testing.T) {
	h := newTestServer(t)
	c := createCustomer(t, h)
	a := createItem(t, h, "LED Par Light", 500, 20)

	var ids []string
	for _, rentDate := range []string{"2099-01-01", "2099-02-01"} {
		rec := do(t, h, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
			"customerId":         c.ID,
			"rentDate":           rentDate,
			"expectedReturnDate": "2099-03-01",
			"items":              []map[string]interface{}{{"itemId": a.ID, "quantity": 1}},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var rental domain.Rental
		decodeBody(t, rec, &rental)
		ids = append(ids, rental.ID)
	}

	rec := do(t, h, http.MethodGet, "/api/v1/rentals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rentals []domain.Rental
	decodeBody(t, rec, &rentals)
	require.Len(t, rentals, 2)
	assert.Equal(t, ids[1], rentals[0].ID)
	assert.Equal(t, ids[0], rentals[1].ID)
}

func TestListRentalsRejectsUnknownStatus(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/rentals?status=Lost", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaleRecordsPayment(t *testing.T) {
	h := newTestServer(t)
	x := createItem(t, h, "Wireless Mic", 100, 5)

	rec := do(t, h, http.MethodPost, "/api/v1/sales", map[string]interface{}{
		"customerName": "Walk-in",
		"date":         "2099-01-01",
		"items":        []map[string]interface{}{{"itemId": x.ID, "quantity": 3, "price": 200}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var sale domain.Sale
	decodeBody(t, rec, &sale)
	assert.True(t, decimal.NewFromInt(600).Equal(sale.TotalAmount))

	rec = do(t, h, http.MethodGet, "/api/v1/payments?sale_id="+sale.ID, nil)
	var payments []domain.Payment
	decodeBody(t, rec, &payments)
	require.Len(t, payments, 1)
	assert.True(t, decimal.NewFromInt(600).Equal(payments[0].Amount))

	rec = do(t, h, http.MethodGet, "/api/v1/items/"+x.ID, nil)
	var stocked domain.StockedItem
	decodeBody(t, rec, &stocked)
	assert.Equal(t, 2, stocked.TotalQuantity)
}

func TestPaymentRequiresAmount(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/payments", map[string]interface{}{"note": "cash"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e errorResponse
	decodeBody(t, rec, &e)
	assert.Equal(t, "amount", e.Error.Ref)
}

func TestNotes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/notes", map[string]string{"content": "call supplier"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var note domain.Note
	decodeBody(t, rec, &note)

	rec = do(t, h, http.MethodGet, "/api/v1/notes", nil)
	var notes []domain.Note
	decodeBody(t, rec, &notes)
	assert.Len(t, notes, 1)

	rec = do(t, h, http.MethodDelete, "/api/v1/notes/"+note.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReports(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/reports/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.ReportSummary
	decodeBody(t, rec, &all)
	assert.Len(t, all, 3)

	rec = do(t, h, http.MethodGet, "/api/v1/reports/summary?window=week", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var week domain.ReportSummary
	decodeBody(t, rec, &week)
	assert.Equal(t, domain.WindowWeek, week.Window)

	rec = do(t, h, http.MethodGet, "/api/v1/reports/summary?window=year", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/reports/dashboard", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/reports/transactions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadAndServe(t *testing.T) {
	h := newTestServer(t)
	png, err := base64.StdEncoding.DecodeString(pngBase64)
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var obj struct {
		URL  string `json:"url"`
		Path string `json:"path"`
		Name string `json:"name"`
	}
	decodeBody(t, rec, &obj)
	assert.Equal(t, "photo.png", obj.Name)
	assert.Equal(t, "http://localhost:8080/api/v1/files/"+obj.Path, obj.URL)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/files/"+obj.Path, nil).WithContext(context.Background())
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestUploadRejectsText(t *testing.T) {
	h := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/nothing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
