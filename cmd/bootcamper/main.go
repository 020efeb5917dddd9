// Command bootcamper signs a user in to the bootcamper API from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bootcamper/authkit/pkg/apiclient"
	"github.com/bootcamper/authkit/pkg/authapi"
	"github.com/bootcamper/authkit/pkg/config"
	"github.com/bootcamper/authkit/pkg/environment"
	"github.com/bootcamper/authkit/pkg/form"
	"github.com/bootcamper/authkit/pkg/logger"
	"github.com/bootcamper/authkit/pkg/messages"
	"github.com/bootcamper/authkit/pkg/notice"
	"github.com/bootcamper/authkit/pkg/redis"
	"github.com/bootcamper/authkit/pkg/session"
	"github.com/bootcamper/authkit/pkg/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "bootcamper:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), "bootcamper"),
		logger.WithLevelName(cfg.LogLevel),
	)
	logger.SetAsDefault(log)

	client, err := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return err
	}
	apiclient.SetDefault(client)

	store, healthcheck, closeStore := openStore(ctx, cfg.Redis, log)
	defer closeStore()

	keeper := session.NewKeeper(store, client,
		session.WithKey(client.BaseURL()),
		session.WithTTL(cfg.SessionTTL),
		session.WithLogger(log),
	)
	if ok, err := keeper.Restore(ctx); err != nil {
		log.WarnContext(ctx, "failed to restore session", logger.Error(err))
		if herr := healthcheck(ctx); herr != nil {
			log.WarnContext(ctx, "session store unhealthy, sign-in will not persist", logger.Error(herr))
		}
	} else if ok {
		log.InfoContext(ctx, "restored previous session")
	}

	auth := authapi.New(client,
		authapi.WithTokenSink(keeper),
		authapi.WithLogger(log),
	)

	catalog := messages.Default()
	lang := catalog.Match(cfg.Lang)

	ctrl, err := form.New(auth,
		form.WithMessages(catalog.Login(lang)),
		form.WithNotices(notice.NewCenter(notice.NewMemoryStorage(), notice.WithLogger(log))),
		form.WithLogger(log),
	)
	if err != nil {
		return err
	}

	return tui.NewRunner(ctrl,
		tui.WithCatalog(catalog, lang),
		tui.WithLogger(log),
	).Run(ctx)
}

// openStore connects to Redis when configured and falls back to an
// in-memory store otherwise. The returned probe checks the store's backend.
func openStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (session.Store, func(context.Context) error, func()) {
	memory := func() (session.Store, func(context.Context) error, func()) {
		return session.NewMemoryStore(), func(context.Context) error { return nil }, func() {}
	}

	if !cfg.Enabled() {
		return memory()
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		log.WarnContext(ctx, "redis unavailable, session will not persist", logger.Error(err))
		return memory()
	}

	return session.NewRedisStore(client, ""), redis.Healthcheck(client), func() { _ = client.Close() }
}
