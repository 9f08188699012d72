package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeValidation              = "VALIDATION_ERROR"
	CodeNotFound                = "NOT_FOUND"
	CodeSlotAlreadyBooked       = "SLOT_ALREADY_BOOKED"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodePaymentAlreadyPaid      = "PAYMENT_ALREADY_PAID"
	CodePaymentNotPaid          = "PAYMENT_NOT_PAID"
	CodeInternal                = "INTERNAL_ERROR"
)

const (
	msgInternalError = "Internal server error"

	// maxBodyBytes ограничивает размер тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DecodeJSON декодирует тело запроса в dst
// Пустое тело и лишние данные после объекта считаются ошибкой.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с кодом по умолчанию для статуса
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondErrorCode(w, status, defaultCode(status), message)
}

// RespondErrorCode пишет ошибку с явным кодом
func RespondErrorCode(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// RespondBadRequest 400 VALIDATION_ERROR
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondErrorCode(w, http.StatusBadRequest, CodeValidation, message)
}

// RespondNotFound 404 NOT_FOUND
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondErrorCode(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict 409 с кодом конкретного конфликта
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondErrorCode(w, http.StatusConflict, code, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondErrorCode(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}

func defaultCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusInternalServerError:
		return CodeInternal
	default:
		return http.StatusText(status)
	}
}
