package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NotFound answers every unmatched route, whatever the method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{
		Error:      "Not Found",
		Message:    "The requested endpoint was not found",
		StatusCode: http.StatusNotFound,
	})
}

// InternalError logs err and writes the generic 500 body. The error text is
// never sent to the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		log.Printf("%s %s failed: %v [%s]", r.Method, r.URL.Path, err, RequestIDFrom(r.Context()))
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Error:      "Internal Server Error",
		Message:    "An internal server error occurred",
		StatusCode: http.StatusInternalServerError,
	})
}
