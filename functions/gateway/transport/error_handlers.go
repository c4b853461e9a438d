package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorJSON(message string) []byte {
	body, err := json.Marshal(ErrorBody{Error: message})
	if err != nil {
		// marshaling a single string field cannot fail
		panic(err)
	}
	return body
}

func SendJSONRes(status int, body []byte) (Response, error) {
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func SendClientError(status int, message string) (Response, error) {
	log.Debug().Int("status", status).Str("error", message).Msg("rejected request")
	return SendJSONRes(status, ErrorJSON(message))
}

// SendServerError hands err back to the Lambda runtime so the invocation is
// reported as failed rather than answered.
func SendServerError(err error) (Response, error) {
	log.Error().Err(err).Msg("invocation failed")
	return Response{StatusCode: http.StatusInternalServerError}, err
}
