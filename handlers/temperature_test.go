package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hdorii/urban-heat/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeather struct {
	temp  float64
	err   error
	calls int
	last  time.Time
}

func (f *fakeWeather) Temperature(_ context.Context, t time.Time) (float64, error) {
	f.calls++
	f.last = t
	if f.err != nil {
		return 0, f.err
	}
	return f.temp, nil
}

func newTemperatureRouter(weather TemperatureSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTemperatureHandler(weather)
	r := gin.New()
	r.POST("/get_temperature", h.GetTemperature)
	r.GET("/api/get_temp_by_timestamp", h.GetTempByTimestamp)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getReq(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTemperatureRoundsToTwoDecimals(t *testing.T) {
	weather := &fakeWeather{temp: 23.456}
	r := newTemperatureRouter(weather)

	w := postJSON(t, r, "/get_temperature", `{"timestamp": "2024-07-15 14:00:00"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 23.46, resp["temperature"])
	assert.Equal(t, 1, weather.calls)
	assert.Equal(t, time.Date(2024, 7, 15, 14, 0, 0, 0, time.UTC), weather.last)
}

func TestGetTemperatureBadTimestampIs200WithError(t *testing.T) {
	weather := &fakeWeather{}
	r := newTemperatureRouter(weather)

	// The form consumes error bodies, so the status stays 200.
	w := postJSON(t, r, "/get_temperature", `{"timestamp": "2024-07-15T14:00:00"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Equal(t, 0, weather.calls)
}

func TestGetTemperatureUnavailableIs200WithError(t *testing.T) {
	weather := &fakeWeather{err: services.ErrUnavailable}
	r := newTemperatureRouter(weather)

	w := postJSON(t, r, "/get_temperature", `{"timestamp": "2024-07-15 14:00:00"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetTempByTimestamp(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	r := newTemperatureRouter(weather)

	w := getReq(t, r, "/api/get_temp_by_timestamp?timestamp=2024-07-15T14:00")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 27.3, resp["temperature"])
}

func TestGetTempByTimestampBadFormat(t *testing.T) {
	r := newTemperatureRouter(&fakeWeather{})

	for _, q := range []string{
		"?timestamp=notatime",
		"?timestamp=15/07/2024",
		"",
	} {
		w := getReq(t, r, "/api/get_temp_by_timestamp"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestGetTempByTimestampUnavailable(t *testing.T) {
	r := newTemperatureRouter(&fakeWeather{err: services.ErrUnavailable})

	w := getReq(t, r, "/api/get_temp_by_timestamp?timestamp=2024-07-15T14:00")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
