package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/core"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var in core.ExpenseInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}

	expense, err := s.records.CreateExpense(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := s.records.ListExpenses(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if items == nil {
		items = []core.Expense{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.records.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, r, err, "Expense not found")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Expense deleted successfully"})
}
