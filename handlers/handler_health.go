package handlers

import "net/http"

type healthResp struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{
		Status:    "healthy",
		Timestamp: h.clock.Timestamp(),
		Service:   ServiceName,
	})
}
