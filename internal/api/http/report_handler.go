package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
)

// reportSummary returns one window when ?window is given, otherwise all three.
func (h *handler) reportSummary(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err := domain.ParseWindow(raw)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		summary, err := h.svc.Reports.GetReport(r.Context(), window)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summaries, err := h.svc.Reports.GetReports(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *handler) transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Reports.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Reports.GetDashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
