package treasury

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"fundraise/internal/config/configs"
)

// Client implements port.Treasury against an external payout service. The
// call is synchronous: the withdrawal transaction only commits after the
// payout endpoint has acknowledged the credit. With no URL configured the
// client runs in log-only mode for local development.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

type creditRequest struct {
	Beneficiary string `json:"beneficiary"`
	Amount      int64  `json:"amount"`
}

// NewClient returns a payout client configured from cfg.
func NewClient(cfg configs.Payout, logger *slog.Logger) *Client {
	return &Client{
		url:    cfg.URL,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Credit moves amount to the beneficiary's account. Any non-2xx response
// is a failure; the caller rolls the withdrawal back.
func (c *Client) Credit(ctx context.Context, beneficiary string, amount int64) error {
	if c.url == "" {
		c.logger.Info("payout recorded (log-only mode)",
			slog.String("beneficiary", beneficiary),
			slog.Int64("amount", amount))
		return nil
	}

	body, err := json.Marshal(creditRequest{Beneficiary: beneficiary, Amount: amount})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("payout service returned %s", resp.Status)
	}
	return nil
}
