package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopfront/admin-console/gateway"
	errs "github.com/shopfront/admin-console/internal/errors"
)

// responseBody mirrors the backend's envelope so the console front end can
// read console and backend responses the same way.
type responseBody struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(responseBody{Message: message, Data: data})
}

// writeBackendError maps a gateway failure onto the console response. The
// 401 case reaches here only after the gateway has already torn the
// session down; the error itself still propagates to the caller.
func writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *gateway.APIError
	if errs.As(err, &apiErr) {
		writeJSON(w, apiErr.StatusCode, nil, apiErr.Message)
		return
	}
	writeJSON(w, http.StatusBadGateway, nil, errs.ErrBackendUnavailable.Error())
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, nil, "invalid request body")
		return false
	}
	return true
}
