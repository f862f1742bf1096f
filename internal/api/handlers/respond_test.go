package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "не найдено"}, body)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "a", v.Name)
}

func TestValidationMessage(t *testing.T) {
	type item struct {
		Name string `validate:"required"`
	}
	type request struct {
		Rows []item `validate:"required,min=1,dive"`
		Size int    `validate:"gte=0,lte=10"`
	}

	err := Validate(request{Rows: []item{{}}, Size: 11})
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "поле Rows[0].Name обязательно")
	assert.Contains(t, msg, "поле Size должно быть не больше 10")

	assert.NoError(t, Validate(request{Rows: []item{{Name: "x"}}}))
}
