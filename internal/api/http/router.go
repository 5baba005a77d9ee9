package http

import (
	"net/http"
	"time"

	"rentdesk-backend/internal/service"
	"rentdesk-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services are the collaborators the API serves.
type Services struct {
	Customers service.CustomerService
	Inventory service.InventoryService
	Rentals   service.RentalService
	Sales     service.SaleService
	Payments  service.PaymentService
	Notes     service.NoteService
	Reports   service.ReportService
	Files     storage.FileStore
}

type Options struct {
	// Location is the shop time zone used for calendar dates in requests.
	Location       *time.Location
	MaxUploadBytes int64
}

type handler struct {
	svc       Services
	loc       *time.Location
	maxUpload int64
}

func NewRouter(svc Services, opts Options) http.Handler {
	h := &handler{svc: svc, loc: opts.Location, maxUpload: opts.MaxUploadBytes}
	if h.loc == nil {
		h.loc = time.UTC
	}
	if h.maxUpload <= 0 {
		h.maxUpload = 10 << 20
	}

	r := mux.NewRouter()
	r.Use(recoverMiddleware, loggingMiddleware)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found", "")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", "")
	})

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/customers", h.listCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers", h.createCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", h.getCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.updateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.deleteCustomer).Methods(http.MethodDelete)

	api.HandleFunc("/items", h.listItems).Methods(http.MethodGet)
	api.HandleFunc("/items", h.createItem).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}", h.getItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", h.updateItem).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}", h.deleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/rentals", h.listRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals", h.createRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", h.getRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", h.returnRental).Methods(http.MethodPost)

	api.HandleFunc("/sales", h.listSales).Methods(http.MethodGet)
	api.HandleFunc("/sales", h.createSale).Methods(http.MethodPost)
	api.HandleFunc("/sales/{id}", h.getSale).Methods(http.MethodGet)

	api.HandleFunc("/payments", h.listPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments", h.recordPayment).Methods(http.MethodPost)

	api.HandleFunc("/notes", h.listNotes).Methods(http.MethodGet)
	api.HandleFunc("/notes", h.addNote).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}", h.deleteNote).Methods(http.MethodDelete)

	api.HandleFunc("/reports/summary", h.reportSummary).Methods(http.MethodGet)
	api.HandleFunc("/reports/transactions", h.transactions).Methods(http.MethodGet)
	api.HandleFunc("/reports/dashboard", h.dashboard).Methods(http.MethodGet)

	if svc.Files != nil {
		api.HandleFunc("/upload", h.upload).Methods(http.MethodPost)
		api.HandleFunc("/files/{key}", h.serveFile).Methods(http.MethodGet)
	}

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
