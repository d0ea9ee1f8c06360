package server

import (
	"net/http"

	"github.com/simonvc/tripbudget/internal/tools"
)

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.ListAll(r.Context())
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) clearExpenses(w http.ResponseWriter, r *http.Request) {
	s.invoke(w, r, tools.ToolClearAllExpenses, nil)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.invoke(w, r, tools.ToolGetExpenseSummary, nil)
}

func (s *Server) budget(w http.ResponseWriter, r *http.Request) {
	s.invoke(w, r, tools.ToolTotalBudget, nil)
}
