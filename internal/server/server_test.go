package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlavoie/buy-vs-rent/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"purchasePrice":     500000,
		"downPayment":       0.20,
		"amortizationYears": 25,
		"commissionRate":    0.05,
		"maintenanceRate":   0.01,
		"propertyTaxRate":   0.01,
		"homeInsuranceRate": 0.003,
		"appreciationRate": map[string]float64{
			"initial":        0.03,
			"afterFiveYears": 0.025,
			"afterTenYears":  0.02,
		},
		"interestRate":         0.04,
		"monthlyRent":          2000,
		"cpiRate":              0.02,
		"rentersInsuranceRate": 0.015,
		"investmentReturnRate": 0.05,
		"startYear":            2026,
	}
}

func postProjection(t *testing.T, handler http.Handler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/projection", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleProjection(t *testing.T) {
	handler := NewHandler(nil, 0, "test")
	rec := postProjection(t, handler, validPayload())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result *projection.Result `json:"result"`
		CSV    string             `json:"csv"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)

	assert.Equal(t, 400000.0, resp.Result.Principal)
	assert.Len(t, resp.Result.Comparison, 26)
	assert.Equal(t, resp.Result.UpfrontCash, resp.Result.Portfolio[0].Balance)
	assert.True(t, strings.HasPrefix(resp.CSV, `"year"`))
}

func TestHandleProjectionInvalidJSON(t *testing.T) {
	handler := NewHandler(nil, 0, "test")
	req := httptest.NewRequest(http.MethodPost, "/api/projection", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProjectionInvalidInput(t *testing.T) {
	payload := validPayload()
	payload["purchasePrice"] = 0

	handler := NewHandler(nil, 0, "test")
	rec := postProjection(t, handler, payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProjectionPartialTierObject(t *testing.T) {
	payload := validPayload()
	payload["interestRate"] = map[string]float64{"initial": 0.04}

	handler := NewHandler(nil, 0, "test")
	rec := postProjection(t, handler, payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProjectionIneligibleDownPayment(t *testing.T) {
	payload := validPayload()
	payload["downPayment"] = 0.03

	handler := NewHandler(nil, 0, "test")
	rec := postProjection(t, handler, payload)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleProjectionRequestTooLarge(t *testing.T) {
	handler := NewHandler(nil, 64, "test")
	rec := postProjection(t, handler, validPayload())
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleReport(t *testing.T) {
	handler := NewHandler(nil, 0, "test")
	body, err := json.Marshal(validPayload())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/projection/report", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleVersion(t *testing.T) {
	handler := NewHandler(nil, 0, "1.2.3")
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp["version"])
}

func TestHandleHealth(t *testing.T) {
	handler := NewHandler(nil, 0, "")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	handler := NewHandler(nil, 0, "")
	req := httptest.NewRequest(http.MethodGet, "/api/projection", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
