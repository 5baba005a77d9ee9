package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"
)

func (h *handler) listPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	payments, err := h.svc.Payments.ListPayments(r.Context(), domain.PaymentFilter{
		RentalID: q.Get("rental_id"),
		SaleID:   q.Get("sale_id"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, _ := parseDate(req.Date, h.loc)
	p, err := h.svc.Payments.RecordPayment(r.Context(), service.PaymentInput{
		RentalID: req.RentalID,
		SaleID:   req.SaleID,
		Amount:   *req.Amount,
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
