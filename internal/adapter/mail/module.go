package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/scentshop/internal/config"
)

// Module exposes the mail sender to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) Sender {
	if p.Config.SMTPHost == "" {
		return NewNopSender(p.Logger)
	}
	return NewSMTPSender(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUsername, p.Config.SMTPPassword, p.Config.MailFrom)
}
