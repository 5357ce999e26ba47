package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/errors"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// SuccessResponse wraps the result of a write operation
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorHandler provides centralized error handling functionality for handlers
type ErrorHandler struct {
	Logger *zap.Logger
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorHandler{Logger: logger}
}

// SendErrorResponse sends a structured error response
func (e *ErrorHandler) SendErrorResponse(w http.ResponseWriter, statusCode int, message, code string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.Error("failed to encode error response", zap.Error(err))
	}
}

// SendSuccessResponse sends a structured success response
func (e *ErrorHandler) SendSuccessResponse(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := SuccessResponse{
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.Error("failed to encode success response", zap.Error(err))
	}
}

// SendJSONResponse sends a generic JSON response
func (e *ErrorHandler) SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		e.Logger.Error("failed to encode JSON response", zap.Error(err))
		e.SendErrorResponse(w, http.StatusInternalServerError, "Failed to encode response", "ENCODING_ERROR", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(body, '\n'))
}

// HandleError renders err. Application errors keep their code and status;
// anything else is reported as an internal error.
func (e *ErrorHandler) HandleError(w http.ResponseWriter, err error, operation string) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.InternalError("failed to "+operation, err)
	}

	status := appErr.GetHTTPStatus()
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("code", string(appErr.Code)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		e.Logger.Error("request failed", fields...)
	} else {
		e.Logger.Debug("request rejected", fields...)
	}

	message := appErr.Message
	if status == http.StatusInternalServerError {
		// storage details stay in the log
		message = "Failed to " + operation
	}
	e.SendErrorResponse(w, status, message, string(appErr.Code), appErr.Details)
}

// HandleJSONDecodeError handles JSON decoding errors
func (e *ErrorHandler) HandleJSONDecodeError(w http.ResponseWriter, err error) {
	e.Logger.Debug("JSON decode error", zap.Error(err))
	e.SendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", string(errors.ErrorCodeInvalidJSON), nil)
}

// HandleValidationErrors sends a 400 carrying the field problems
func (e *ErrorHandler) HandleValidationErrors(w http.ResponseWriter, fields map[string]string) {
	if len(fields) > 0 {
		e.SendErrorResponse(w, http.StatusBadRequest, "Validation failed", string(errors.ErrorCodeValidation), fields)
	}
}

// ParseAndValidateID parses a numeric path id, answering 400 when it is malformed
func (e *ErrorHandler) ParseAndValidateID(w http.ResponseWriter, raw string) (uint, bool) {
	id, err := repository.ParseID(raw)
	if err != nil {
		e.HandleError(w, errors.InvalidParameterError("id").WithDetail("id", "must be a positive integer"), "parse id")
		return 0, false
	}
	return id, true
}
