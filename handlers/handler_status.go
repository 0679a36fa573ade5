package handlers

import "net/http"

type statusResp struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Framework   string `json:"framework"`
	Language    string `json:"language"`
	DemoValue   string `json:"demo_value"`
}

func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResp{
		Message:     StatusMessage,
		Timestamp:   h.clock.Timestamp(),
		Environment: h.environment(),
		Version:     Version,
		Framework:   Framework,
		Language:    Language,
		DemoValue:   h.demoValue(),
	})
}
