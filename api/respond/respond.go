package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the wire shape of every API response: a 200-level status with
// either a payload or a list of business-rule errors. Transport failures are
// signalled with a non-2xx status and no envelope.
type Envelope struct {
	Status int      `json:"status"`
	Body   any      `json:"body,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// OK writes a success envelope carrying body.
func OK(w http.ResponseWriter, body any) {
	write(w, Envelope{Status: http.StatusOK, Body: body})
}

// Fail writes a business-rule failure envelope. The transport status stays
// 200; clients read the errors field.
func Fail(w http.ResponseWriter, msgs ...string) {
	write(w, Envelope{Status: http.StatusOK, Errors: msgs})
}

// ServerError writes a bare 500. Clients map it to a connectivity failure.
func ServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Unauthorized writes a bare 401.
func Unauthorized(w http.ResponseWriter) {
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("encode response envelope", slog.Any("err", err))
	}
}
