package services

import (
	"context"
	"fmt"

	"github.com/hdorii/urban-heat/config"
	"github.com/hdorii/urban-heat/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type dataframeSplit struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

type scoringPayload struct {
	DataframeSplit dataframeSplit `json:"dataframe_split"`
}

// ScoringClient forwards a single feature row to the hosted model and
// hands the prediction body back untouched. It never reinterprets the
// model's output.
type ScoringClient struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

func NewScoringClient(cfg config.ScoringConfig, logger *zap.Logger) *ScoringClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", cfg.Token)

	return &ScoringClient{
		httpClient: client,
		url:        cfg.URL,
		logger:     logger,
	}
}

// Predict posts one row in the fixed column order and returns the raw
// response body along with the upstream status code.
func (c *ScoringClient) Predict(ctx context.Context, row []any) ([]byte, int, error) {
	payload := scoringPayload{
		DataframeSplit: dataframeSplit{
			Columns: models.PredictionColumns,
			Data:    [][]any{row},
		},
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		c.logger.Error("scoring request failed", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to call scoring endpoint: %w", err)
	}

	c.logger.Info("scoring endpoint responded",
		zap.Int("status_code", resp.StatusCode()),
		zap.Int("body_bytes", len(resp.Body())),
	)

	return resp.Body(), resp.StatusCode(), nil
}
