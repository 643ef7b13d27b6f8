package liqpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/pkg/config"
	"github.com/DeNice-r/liqpay-go/pkg/transport"
)

// CheckoutPath is the gateway endpoint signed payloads are posted to, both by
// this client and by the rendered browser form.
const CheckoutPath = "/api/3/checkout"

type Client struct {
	cfg config.LiqPay
	c   *http.Client
}

func NewClient(cfg config.LiqPay) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type CheckoutRequest struct {
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

type CheckoutResponse struct {
	URL            string `json:"url"`
	ErrCode        string `json:"err_code"`
	ErrDescription string `json:"err_description"`
}

// Checkout submits a signed payload to the gateway and returns the URL the
// payer should be redirected to. The payload is trusted to be validated and
// signed already; every transport or gateway failure maps to
// entity.ErrGatewayUnavailable.
func (c *Client) Checkout(ctx context.Context, data, signature string) (string, error) {
	reqData := CheckoutRequest{
		Data:      data,
		Signature: signature,
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := c.cfg.APIURL + CheckoutPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: do request: %w", entity.ErrGatewayUnavailable, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", entity.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: bad response status %d:\n%s", entity.ErrGatewayUnavailable, resp.StatusCode, body)
	}

	var respData CheckoutResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %w", entity.ErrGatewayUnavailable, err)
	}

	if respData.ErrCode != "" {
		return "", fmt.Errorf("%w: gateway error %s: %s",
			entity.ErrGatewayUnavailable, respData.ErrCode, respData.ErrDescription)
	}

	if respData.URL == "" {
		return "", fmt.Errorf("%w: response has no redirect URL", entity.ErrGatewayUnavailable)
	}

	return respData.URL, nil
}
