package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	RequestIDKey ContextKey = "requestID"
)

// RequestIDFromContext returns the id the request middleware assigned, if any.
func RequestIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(RequestIDKey).(string)
	return id
}

// MsgpackContentType is served when the client asks for it in Accept.
const MsgpackContentType = "application/msgpack"

func wantsMsgpack(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, MsgpackContentType) || strings.Contains(accept, "application/x-msgpack")
}

// respond encodes v as JSON, or as MessagePack when the client accepts it.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsMsgpack(r) {
		w.Header().Set("Content-Type", MsgpackContentType)
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			log.Error("Failed to encode msgpack response", "error", err, "requestID", RequestIDFromContext(r))
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err, "requestID", RequestIDFromContext(r))
	}
}
