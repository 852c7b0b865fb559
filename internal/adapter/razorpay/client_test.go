package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", "secret", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", "secret", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreateOrder(t *testing.T) {
	var gotAmount int64
	var gotCurrency, gotReceipt, gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		var body struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotAmount = body.Amount
		gotCurrency = body.Currency
		gotReceipt = body.Receipt
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	id, err := client.CreateOrder(ctx, decimal.RequireFromString("1499.50"), "INR", "order_7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "order_test123" {
		t.Fatalf("unexpected order id: %s", id)
	}
	if gotAmount != 149950 {
		t.Fatalf("expected amount in minor units 149950, got %d", gotAmount)
	}
	if gotCurrency != "INR" || gotReceipt != "order_7" {
		t.Fatalf("unexpected payload: currency=%s receipt=%s", gotCurrency, gotReceipt)
	}
	if gotUser != "rzp_key" || gotPass != "rzp_secret" {
		t.Fatalf("unexpected basic auth: %s:%s", gotUser, gotPass)
	}
}

func TestCreateOrderErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		client, err := NewHTTPClient(srv.URL, "key", "secret", testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.CreateOrder(context.Background(), decimal.NewFromInt(100), "INR", "r"); err == nil {
			t.Fatal("expected error from server")
		}
	})

	t.Run("missing order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		client, err := NewHTTPClient(srv.URL, "key", "secret", testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.CreateOrder(context.Background(), decimal.NewFromInt(100), "INR", "r"); err == nil {
			t.Fatal("expected error for empty order id")
		}
	})
}

func TestHMACVerifier(t *testing.T) {
	secret := "rzp_secret"
	verifier := NewHMACVerifier(secret)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_abc|pay_def"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !verifier.Verify("order_abc", "pay_def", valid) {
		t.Fatal("expected valid signature to verify")
	}
	tampered := valid[:len(valid)-1] + "0"
	if tampered == valid {
		tampered = valid[:len(valid)-1] + "1"
	}
	if verifier.Verify("order_abc", "pay_def", tampered) {
		t.Fatal("expected tampered signature to fail")
	}
	if verifier.Verify("order_abc", "pay_other", valid) {
		t.Fatal("expected signature over different payment to fail")
	}
	if verifier.Verify("order_abc", "pay_def", "") {
		t.Fatal("expected empty signature to fail")
	}
	if NewHMACVerifier("other_secret").Verify("order_abc", "pay_def", valid) {
		t.Fatal("expected signature with wrong secret to fail")
	}
}
