package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/open-builders/guard-bot/internal/common/config"
	"github.com/open-builders/guard-bot/internal/common/logger"
	guardtg "github.com/open-builders/guard-bot/internal/features/guard/delivery/telegram"
	guardsvc "github.com/open-builders/guard-bot/internal/features/guard/service"
	apphttp "github.com/open-builders/guard-bot/internal/http"
	redisplatform "github.com/open-builders/guard-bot/internal/platform/redis"
	"github.com/open-builders/guard-bot/internal/platform/telegram"
)

func main() {
	// Create cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("guard-bot", false)
		logger.Fatal().Err(err).Msg("config load")
	}

	log := logger.Init("guard-bot", cfg.Debug)

	bot, err := telegram.NewBot(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot")
	}

	var events guardsvc.EventPublisher
	deps := map[string]apphttp.Pinger{}
	if cfg.EventsEnabled() {
		rdb, err := redisplatform.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis open")
		}
		defer rdb.Close()

		events = redisplatform.NewStreamPublisher(rdb, cfg.Redis.Stream)
		deps["redis"] = apphttp.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Info().Str("stream", cfg.Redis.Stream).Msg("Event stream enabled")
	}

	svc := guardsvc.NewGuardService(telegram.NewClient(bot, log), events, log)

	dispatcher := guardtg.NewDispatcher(log)
	guardtg.NewHandler(ctx, svc, log).Register(dispatcher)

	if err := run(ctx, cfg, bot, dispatcher, deps, log); err != nil {
		log.Fatal().Err(err).Msg("guard bot")
	}
}

func run(ctx context.Context, cfg *config.Config, bot *gotgbot.Bot, dispatcher *ext.Dispatcher, deps map[string]apphttp.Pinger, log zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return guardtg.Poll(ctx, bot, dispatcher, guardtg.PollingOpts{
			DropPendingUpdates: cfg.Telegram.DropPendingUpdates,
			TimeoutSec:         cfg.Telegram.PollTimeoutSec,
		}, log)
	})

	if cfg.Server.Port != "" {
		srv := apphttp.NewServer(cfg.Server.Port, apphttp.NewRouter(deps, cfg.Debug), log)
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}

	return g.Wait()
}
