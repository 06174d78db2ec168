package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/application/service"
)

// nopLogger satisfies port.Logger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})              {}
func (nopLogger) Info(string, ...interface{})               {}
func (nopLogger) Warn(string, ...interface{})               {}
func (nopLogger) Error(string, ...interface{})              {}
func (l nopLogger) With(...interface{}) port.Logger         { return l }
func (l nopLogger) WithContext(context.Context) port.Logger { return l }

func newTestHandler() *ConversionHandler {
	svc := service.NewConverterService(nopLogger{})
	return NewConversionHandler(svc, nopLogger{})
}

func postConversion(t *testing.T, h *ConversionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/conversions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestConvertEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postConversion(t, h, `{"value": 100, "from": "celsius", "to": "fahrenheit"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[dto.ConversionResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.InDelta(t, 212.0, resp.Data.Value, 1e-9)
	assert.Equal(t, "212 °F", resp.Data.Display)
	assert.Equal(t, "temperature", resp.Data.Dimension)
}

func TestConvertEndpointWithPrecision(t *testing.T) {
	h := newTestHandler()

	rec := postConversion(t, h, `{"value": 1, "from": "meter", "to": "foot", "precision": 3, "mode": "trunc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[dto.ConversionResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "3.28", resp.Data.Formatted)
}

func TestConvertEndpointUnknownUnit(t *testing.T) {
	h := newTestHandler()

	rec := postConversion(t, h, `{"value": 1, "from": "furlong", "to": "meter"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.APIResponse[dto.ConversionResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_UNIT", resp.Error.Code)
}

func TestConvertEndpointDimensionMismatch(t *testing.T) {
	h := newTestHandler()

	rec := postConversion(t, h, `{"value": 25, "from": "celsius", "to": "meter"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.APIResponse[dto.ConversionResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DIMENSION_MISMATCH", resp.Error.Code)
}

func TestConvertEndpointInvalidBody(t *testing.T) {
	h := newTestHandler()

	rec := postConversion(t, h, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.APIResponse[dto.ConversionResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_BODY", resp.Error.Code)
}

func TestListUnitsEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.APIResponse[[]dto.UnitInfo]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 6)
}
