package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

const (
	msgInternalError = "внутренняя ошибка сервера"

	// maxBodySize ограничение размера тела запроса (1 MB)
	maxBodySize = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictErrorResponse тело ответа 409 при пересечении бронирований
type ConflictErrorResponse struct {
	Error       string                    `json:"error"`
	Conflicts   []models.ConflictResponse `json:"conflicts"`
	Suggestions []models.IntervalResponse `json:"suggestions"`
}

// DecodeJSON декодирует тело запроса в dst
// Неизвестные поля и данные после JSON-объекта считаются ошибкой
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("decode json: %w", err)
	}

	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в формате {"error": "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnprocessable 422
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

// RespondSchedulingConflict 409 со списком пересечений и альтернативными интервалами
func RespondSchedulingConflict(
	w http.ResponseWriter,
	message string,
	conflicts []models.ConflictResponse,
	suggestions []models.IntervalResponse,
) {
	if conflicts == nil {
		conflicts = []models.ConflictResponse{}
	}
	if suggestions == nil {
		suggestions = []models.IntervalResponse{}
	}

	RespondJSON(w, http.StatusConflict, ConflictErrorResponse{
		Error:       message,
		Conflicts:   conflicts,
		Suggestions: suggestions,
	})
}

// RespondInternalError 500 без деталей ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
