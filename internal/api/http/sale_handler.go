package http

import (
	"net/http"

	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

func (h *handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.Sales.ListSales(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, _ := parseDate(req.Date, h.loc)
	in := service.CreateSaleInput{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Date:         date,
		Items:        make([]service.SaleLineInput, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, service.SaleLineInput{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	sale, err := h.svc.Sales.CreateSale(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (h *handler) getSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.svc.Sales.GetSale(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}
