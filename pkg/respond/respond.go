// Package respond writes the small JSON envelopes the form endpoints speak.
package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status. Encoding failures are ignored: by the
// time the encoder fails the status line is already on the wire and the
// payloads here are all static structs.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Result is the {ok, message?} envelope used by the referral and partners
// endpoints.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// OK writes a 200 {ok:true}.
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, Result{OK: true})
}

// Fail writes {ok:false, message} with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Result{OK: false, Message: message})
}
