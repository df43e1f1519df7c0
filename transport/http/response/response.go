// Package response renders the JSON envelopes every handler uses.
// Success bodies sit under "data", failures under "error", plain
// notices under "message".
package response

import (
	"encoding/json"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	respond(writer, code, Data[any]{Data: &jsonPayload})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Message{Message: &message})
}

// WithError maps the error onto its HTTP code via the failure package;
// anything unrecognized renders as a 500.
func WithError(writer http.ResponseWriter, err error) {
	msg := err.Error()

	respond(writer, failure.GetCode(err), Error{Error: &msg})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func respond(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
