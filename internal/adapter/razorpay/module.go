package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/scentshop/internal/config"
)

// Module exposes the gateway client and signature verifier to the fx graph.
var Module = fx.Provide(newClient, newVerifier)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.RazorpayBaseURL, p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret, p.Logger)
}

func newVerifier(cfg *config.Config) SignatureVerifier {
	return NewHMACVerifier(cfg.RazorpayKeySecret)
}
