package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/PasanSasmika/Fashion-Backend/internal/app"
	"github.com/PasanSasmika/Fashion-Backend/internal/config"
	"github.com/PasanSasmika/Fashion-Backend/internal/handler"
	"github.com/PasanSasmika/Fashion-Backend/internal/notification"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
	"github.com/PasanSasmika/Fashion-Backend/internal/postgres"
	"github.com/PasanSasmika/Fashion-Backend/internal/repo"
	"github.com/PasanSasmika/Fashion-Backend/internal/service"
	"github.com/PasanSasmika/Fashion-Backend/pkg/cache"
	"github.com/PasanSasmika/Fashion-Backend/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Fashion Backend API
// @version         1.0
// @description     Order processing API with PayHere checkout integration
// @BasePath        /api
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db, conf.Postgres))

	ordersRepo := repo.NewOrdersRepo(db)
	productsRepo := repo.NewProductsRepo(db)
	usersRepo := repo.NewUsersRepo(db)
	txManager := trm.NewManager(db)
	namesCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	signer := payhere.NewSigner(conf.PayHere.MerchantID, conf.PayHere.Secret)

	sender, err := notification.NewSMTPSender(conf.SMTP)
	panicIfErr("failed to create smtp sender", err)

	renderer := notification.NewPDFRenderer()
	dispatcher := notification.NewDispatcher(logger, sender, renderer, ordersRepo, notification.Config{
		MaxAttempts: conf.Mail.MaxAttempts,
		RetryDelay:  conf.Mail.RetryDelay,
	})

	orderService := service.NewOrderService(
		logger, txManager, ordersRepo, productsRepo, usersRepo, namesCache,
		signer, dispatcher, renderer,
		conf.PayHere, conf.Mail.DispatchTimeout,
	)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(namesCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
