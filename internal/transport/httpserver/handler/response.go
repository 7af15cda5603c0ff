package handler

import (
	"encoding/json"
	"net/http"

	"wedding-site-go/internal/validation"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeValidation(w http.ResponseWriter, err *validation.Error) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:    "validation_failed",
		Message: "validation failed",
		Details: err.Fields,
	}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeList[T any, M any](w http.ResponseWriter, items []M, convert func(M) T) {
	response := make([]T, 0, len(items))
	for _, item := range items {
		response = append(response, convert(item))
	}
	writeJSON(w, http.StatusOK, listResponse[T]{Items: response})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
