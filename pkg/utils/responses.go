package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response body shape: {"success": bool, "msg": "...", ...payload}
type Envelope map[string]any

// ResponseJSON writes a JSON body with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(env)
}

func envelope(success bool, msg string, extra Envelope) Envelope {
	env := Envelope{"success": success}
	if msg != "" {
		env["msg"] = msg
	}
	for k, v := range extra {
		env[k] = v
	}
	return env
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, msg string, extra Envelope) {
	ResponseJSON(w, http.StatusOK, envelope(true, msg, extra))
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, msg string, extra Envelope) {
	ResponseJSON(w, http.StatusCreated, envelope(true, msg, extra))
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, msg string, errors any) {
	env := envelope(false, msg, nil)
	if errors != nil {
		env["errors"] = errors
	}
	ResponseJSON(w, http.StatusBadRequest, env)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusUnauthorized, envelope(false, msg, nil))
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusForbidden, envelope(false, msg, nil))
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusNotFound, envelope(false, msg, nil))
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusConflict, envelope(false, msg, nil))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusInternalServerError, envelope(false, msg, nil))
}
