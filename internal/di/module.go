package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/scentshop/internal/adapter/cache"
	"github.com/polkiloo/scentshop/internal/adapter/mail"
	"github.com/polkiloo/scentshop/internal/adapter/razorpay"
	"github.com/polkiloo/scentshop/internal/app"
	"github.com/polkiloo/scentshop/internal/config"
	"github.com/polkiloo/scentshop/internal/logger"
	"github.com/polkiloo/scentshop/internal/pkg/auth"
	"github.com/polkiloo/scentshop/internal/server/http/handlers"
	"github.com/polkiloo/scentshop/internal/server/http/router"
	"github.com/polkiloo/scentshop/internal/storage/postgres"
	"github.com/polkiloo/scentshop/internal/usecase"
	"github.com/polkiloo/scentshop/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		razorpay.Module,
		mail.Module,
		usecase.Module,
		fx.Provide(func(d *worker.MailDispatcher) usecase.Notifier { return d }),
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
