package response

import (
	"encoding/json"
	"net/http"
	"parkdz/shared/constant"
	"parkdz/shared/failure"
	"parkdz/shared/logger"
)

// Envelope is the uniform response shape:
// { success, data?, error?, message?, count? }.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
	Count   *int    `json:"count,omitempty"`
}

// WithMessage sends a successful response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Envelope{Success: true, Message: &message})
}

// WithJSON sends a successful response containing a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	respond(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithJSONCount sends a successful response with a payload and an item count.
func WithJSONCount(writer http.ResponseWriter, code int, jsonPayload any, count int) {
	respond(writer, code, Envelope{Success: true, Data: jsonPayload, Count: &count})
}

// WithError sends a response with an error message; the status code is
// derived from the failure taxonomy.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	respond(writer, code, Envelope{Success: false, Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	msg := constant.ResponseErrorRequestLimitExceeded
	respond(writer, http.StatusTooManyRequests, Envelope{Success: false, Error: &msg})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	msg := constant.ResponseErrorPrepareShutdown
	respond(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: &msg})
}

// WithUnhealthy sends a default response for when the server is unhealthy.
func WithUnhealthy(writer http.ResponseWriter) {
	msg := constant.ResponseErrorUnhealthy
	respond(writer, http.StatusServiceUnavailable, Envelope{Success: false, Error: &msg})
}

func respond(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
