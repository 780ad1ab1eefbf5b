package http

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dashboard.Summary(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
