package response

import (
	"encoding/json"
	"net/http"

	"clubform/internal/common"
)

// ErrorCollector is notified of every error response written.
type ErrorCollector interface {
	IncErrorCode(code common.Code)
}

var collector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	collector = c
}

type errorBody struct {
	Error   common.Code       `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, err error) {
	appErr := common.As(err)
	if collector != nil {
		collector.IncErrorCode(appErr.Code)
	}
	message := appErr.Message
	if appErr.Code == common.CodeInternal {
		message = "internal server error"
	}
	JSON(w, StatusFor(appErr.Code), errorBody{Error: appErr.Code, Message: message, Fields: appErr.Fields})
}

func StatusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
