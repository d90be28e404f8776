package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hdorii/urban-heat/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrUnavailable covers every upstream failure mode: transport errors,
// non-success statuses, malformed bodies, empty result sets. Callers
// only need to know the value could not be obtained.
var ErrUnavailable = errors.New("upstream data unavailable")

// asosResponse mirrors the provider's nested envelope. Item fields
// arrive as JSON strings even when numeric.
type asosResponse struct {
	Response struct {
		Body struct {
			Items struct {
				Item []struct {
					Ta string `json:"ta"`
				} `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// WeatherClient fetches hourly temperature observations for a fixed
// ASOS station.
type WeatherClient struct {
	httpClient *resty.Client
	serviceKey string
	stationID  string
	logger     *zap.Logger
	now        func() time.Time
}

func NewWeatherClient(cfg config.WeatherConfig, logger *zap.Logger) *WeatherClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("Accept", "application/json")

	return &WeatherClient{
		httpClient: client,
		serviceKey: cfg.ServiceKey,
		stationID:  cfg.StationID,
		logger:     logger,
		now:        time.Now,
	}
}

// Temperature returns the station temperature observed at t.
// The provider only publishes finalized observations through the
// previous calendar day, so a timestamp on or after today fails fast
// without any network call. All failures fold into ErrUnavailable.
func (c *WeatherClient) Temperature(ctx context.Context, t time.Time) (float64, error) {
	reqY, reqM, reqD := t.Date()
	nowY, nowM, nowD := c.now().Date()
	reqDate := time.Date(reqY, reqM, reqD, 0, 0, 0, 0, time.UTC)
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, time.UTC)
	if !reqDate.Before(today) {
		c.logger.Warn("ASOS observations only cover through the previous day",
			zap.Time("requested", t),
		)
		return 0, ErrUnavailable
	}

	date := t.Format("20060102")
	hour := t.Format("15")

	var out asosResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"serviceKey": c.serviceKey,
			"pageNo":     "1",
			"numOfRows":  "10",
			"dataType":   "JSON",
			"dataCd":     "ASOS",
			"dateCd":     "HR",
			"startDt":    date,
			"startHh":    hour,
			"endDt":      date,
			"endHh":      hour,
			"stnIds":     c.stationID,
		}).
		SetResult(&out).
		Get("")
	if err != nil {
		c.logger.Warn("ASOS request failed", zap.Error(err))
		return 0, ErrUnavailable
	}
	if resp.IsError() {
		c.logger.Warn("ASOS returned non-success status",
			zap.Int("status_code", resp.StatusCode()),
		)
		return 0, ErrUnavailable
	}

	items := out.Response.Body.Items.Item
	if len(items) == 0 {
		c.logger.Warn("ASOS response contained no observations",
			zap.String("date", date),
			zap.String("hour", hour),
		)
		return 0, ErrUnavailable
	}

	temp, err := strconv.ParseFloat(items[0].Ta, 64)
	if err != nil {
		c.logger.Warn("ASOS temperature field not numeric",
			zap.String("ta", items[0].Ta),
		)
		return 0, ErrUnavailable
	}

	return temp, nil
}
