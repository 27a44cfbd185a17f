package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

// WriteJSON encodes data before touching w, so a value that cannot be
// encoded still produces a clean 500.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	body, err := go_json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}
