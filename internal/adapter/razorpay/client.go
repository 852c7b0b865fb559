package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/shopspring/decimal"
)

// Client exposes the gateway operation needed to start a payment.
type Client interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, error)
}

// SignatureVerifier checks a payment callback signature.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// HTTPClient implements Client via the Razorpay Orders API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse razorpay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("razorpay url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers a gateway order for the amount and returns its id.
// The gateway takes amounts in the currency's minor unit.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	payload, err := json.Marshal(createOrderRequest{
		Amount:   amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("razorpay request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("razorpay error: %s", resp.Status)
	}

	var data createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.ID == "" {
		return "", fmt.Errorf("razorpay response missing order id")
	}
	return data.ID, nil
}

// HMACVerifier validates callback signatures with the account key secret.
type HMACVerifier struct {
	keySecret string
}

func NewHMACVerifier(keySecret string) *HMACVerifier {
	return &HMACVerifier{keySecret: keySecret}
}

// Verify recomputes the hex HMAC-SHA256 over "<orderID>|<paymentID>" and
// compares it in constant time.
func (v *HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
