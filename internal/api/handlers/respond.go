package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse модель ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// RespondBadRequest отправляет 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUnauthorized отправляет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondInternalError отправляет 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage формирует сообщение для клиента по ошибке Validate
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", field)
	case "min", "gte":
		return fmt.Sprintf("поле %s должно быть не меньше %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("поле %s должно быть не больше %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("поле %s должно быть больше %s", field, fe.Param())
	default:
		return fmt.Sprintf("поле %s не прошло проверку %s", field, fe.Tag())
	}
}
