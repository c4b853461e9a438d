package transport

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// NOTE: `err` is logged when status is 400 or greater
func SendServerRes(w http.ResponseWriter, body []byte, status int, err error) {
	if status >= 400 {
		evt := log.Warn()
		if status >= 500 {
			evt = log.Error()
		}
		evt.Err(err).Int("status", status).RawJSON("body", body).Msg("ERR")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, writeErr := w.Write(body); writeErr != nil {
		log.Error().Err(writeErr).Msg("error writing response")
	}
}
