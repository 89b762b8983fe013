package mux

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxRequestBytes limits the size of a request body
const maxRequestBytes = 1 << 16

func remoteAddr(r *http.Request) string {
	parts := strings.Split(r.RemoteAddr, ":")
	if len(parts) == 1 {
		return parts[0]
	}

	return strings.Join(parts[0:len(parts)-1], ":")
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, r, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(payload); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		requestLogger(r).WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		requestLogger(r).WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, r, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// requestLogger returns the logger for the request, it carries the request ID when set by the middleware
func requestLogger(r *http.Request) logrus.FieldLogger {
	if r != nil {
		if logger, ok := r.Context().Value(ctxLoggerKey).(logrus.FieldLogger); ok {
			return logger
		}
	}

	return logrus.StandardLogger()
}
