package response

import (
	"encoding/json"
	"net/http"

	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/logger"
)

const (
	fieldSuccess = "success"
	fieldMessage = "message"
	fieldError   = "error"
)

// Envelope is the body of every api response: success plus named payload fields.
type Envelope map[string]any

// Error documents a failed response.
type Error struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

// Message documents a successful response without payload.
type Message struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// WithEnvelope sends a successful response carrying the given payload fields
func WithEnvelope(writer http.ResponseWriter, code int, payload Envelope) {
	if payload == nil {
		payload = Envelope{}
	}

	payload[fieldSuccess] = true

	response(writer, code, payload)
}

// WithData sends a successful response with a single payload field
func WithData(writer http.ResponseWriter, code int, key string, data any) {
	WithEnvelope(writer, code, Envelope{key: data})
}

// WithMessage sends a successful response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithEnvelope(writer, code, Envelope{fieldMessage: message})
}

// WithError sends a failed response with the error message
func WithError(writer http.ResponseWriter, err error) {
	WithFailure(writer, failure.GetCode(err), err.Error())
}

// WithFailure sends a failed response with an explicit status
func WithFailure(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{fieldSuccess: false, fieldError: message})
}

// WithCSV sends a file download
func WithCSV(writer http.ResponseWriter, fileName, content string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	writer.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write([]byte(content)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithMethodNotAllowed answers methods a resource does not support
func WithMethodNotAllowed(writer http.ResponseWriter, _ *http.Request) {
	WithFailure(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
