package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

func (h *handler) listRentals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.RentalFilter{
		Status:     domain.RentalStatus(q.Get("status")),
		CustomerID: q.Get("customer_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeServiceError(w, r, domain.NewValidationError("status", "unknown rental status"))
		return
	}

	rentals, err := h.svc.Rentals.ListRentals(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *handler) createRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Dates were checked by the validator.
	rentDate, _ := parseDate(req.RentDate, h.loc)
	expected, _ := parseDate(req.ExpectedReturnDate, h.loc)

	in := service.CreateRentalInput{
		CustomerID:         req.CustomerID,
		RentDate:           rentDate,
		ExpectedReturnDate: expected,
		Notes:              req.Notes,
		Items:              make([]service.RentalLineInput, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, service.RentalLineInput{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	rental, err := h.svc.Rentals.CreateRental(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *handler) getRental(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *handler) returnRental(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rental, err := h.svc.Rentals.ReturnRentalItems(r.Context(), mux.Vars(r)["id"], req.ItemIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
