package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/core"
)

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var in core.IncomeInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}

	income, err := s.records.CreateIncome(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, income)
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	items, err := s.records.ListIncomes(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if items == nil {
		items = []core.Income{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.records.DeleteIncome(r.Context(), id); err != nil {
		writeError(w, r, err, "Income not found")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Income deleted successfully"})
}
