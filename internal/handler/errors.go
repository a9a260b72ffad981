package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// WriteError sends a plain text error to the client.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}

// serverError logs the cause and answers with a generic message only.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Log.Error(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
