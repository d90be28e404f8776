package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hdorii/urban-heat/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScorer struct {
	body   []byte
	status int
	err    error
	rows   [][]any
}

func (f *fakeScorer) Predict(_ context.Context, row []any) ([]byte, int, error) {
	f.rows = append(f.rows, row)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.body, f.status, nil
}

func newPredictionRouter(weather TemperatureSource, scorer Scorer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPredictionHandler(weather, scorer)
	r := gin.New()
	r.POST("/predict_result", h.PredictResult)
	return r
}

const validPredictBody = `{
	"District": "Gangnam-gu",
	"green_rate": 32.5,
	"Building_Density": 0.61,
	"car_registration_count": 240000,
	"population_density": 16500,
	"avg_km_per_road_km": 1.2,
	"timestamp": "2024-07-15T14:00:00Z"
}`

func TestPredictResultSuccess(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	scorer := &fakeScorer{body: []byte(`{"predictions": [2.87]}`), status: http.StatusOK}
	r := newPredictionRouter(weather, scorer)

	w := postJSON(t, r, "/predict_result", validPredictBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"predictions": [2.87]}`, w.Body.String(), "scoring response must be relayed verbatim")

	require.Len(t, scorer.rows, 1)
	row := scorer.rows[0]
	require.Len(t, row, 8)

	wantEpoch := time.Date(2024, 7, 15, 14, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "Gangnam-gu", row[0])
	assert.Equal(t, 32.5, row[1])
	assert.Equal(t, 0.61, row[2])
	assert.Equal(t, 240000.0, row[3])
	assert.Equal(t, 16500.0, row[4])
	assert.Equal(t, 1.2, row[5])
	assert.Equal(t, wantEpoch, row[6])
	assert.Equal(t, 27.3, row[7])
}

func TestPredictResultBadTimestamp(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	scorer := &fakeScorer{}
	r := newPredictionRouter(weather, scorer)

	w := postJSON(t, r, "/predict_result", `{"District": "Gangnam-gu", "timestamp": "not-a-time"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "timestamp")
	assert.Equal(t, 0, weather.calls, "weather must not be consulted for an unparseable timestamp")
	assert.Empty(t, scorer.rows)
}

func TestPredictResultMissingTimestamp(t *testing.T) {
	r := newPredictionRouter(&fakeWeather{}, &fakeScorer{})

	w := postJSON(t, r, "/predict_result", `{"District": "Gangnam-gu"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestPredictResultMissingColumnNamed(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	scorer := &fakeScorer{}
	r := newPredictionRouter(weather, scorer)

	// green_rate omitted
	w := postJSON(t, r, "/predict_result", `{
		"District": "Gangnam-gu",
		"Building_Density": 0.61,
		"car_registration_count": 240000,
		"population_density": 16500,
		"avg_km_per_road_km": 1.2,
		"timestamp": "2024-07-15T14:00:00Z"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "green_rate")
	assert.Empty(t, scorer.rows)
}

func TestPredictResultTemperatureUnavailable(t *testing.T) {
	weather := &fakeWeather{err: services.ErrUnavailable}
	scorer := &fakeScorer{}
	r := newPredictionRouter(weather, scorer)

	w := postJSON(t, r, "/predict_result", validPredictBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Empty(t, scorer.rows, "nothing is forwarded when the temperature lookup fails")
}

func TestPredictResultForwardingFailure(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	scorer := &fakeScorer{err: errors.New("connection refused")}
	r := newPredictionRouter(weather, scorer)

	w := postJSON(t, r, "/predict_result", validPredictBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPredictResultUpstreamStatusRelayed(t *testing.T) {
	weather := &fakeWeather{temp: 27.3}
	scorer := &fakeScorer{body: []byte(`{"error_code": "BAD_REQUEST"}`), status: http.StatusBadRequest}
	r := newPredictionRouter(weather, scorer)

	w := postJSON(t, r, "/predict_result", validPredictBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}
