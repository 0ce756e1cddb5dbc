package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/redis/go-redis/v9"

	"namebot/handler"
	"namebot/internal/config"
	"namebot/internal/integrations/paramstore"
	"namebot/internal/integrations/telegram"
	"namebot/internal/locale"
	"namebot/internal/logger"
	"namebot/internal/namegen"
	"namebot/internal/pg"
	"namebot/internal/repository"
	"namebot/internal/session"
	"namebot/internal/usecase"
)

// nameStore is what the bot needs from either issued-name backend.
type nameStore interface {
	usecase.NameStore
	CountNames(ctx context.Context) (int64, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LoggerOptions("namebot")...)
	slog.SetDefault(log)

	// ---- AWS SDK config, loaded only when a backend needs it ----
	awsCfg := sync.OnceValues(func() (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})

	// ---- Stores ----
	names, closeNames := mustNameStore(ctx, cfg, awsCfg, log)
	defer closeNames()

	if n, err := names.CountNames(ctx); err != nil {
		log.Warn("failed to count issued names", "err", err)
	} else {
		log.Info("issued-name store ready", "backend", cfg.NameStore, "issued", n)
	}

	sessions, closeSessions := mustSessionStore(ctx, cfg, awsCfg)
	defer closeSessions()

	// ---- Services ----
	catalog := locale.Default()
	generator := namegen.New()
	for _, label := range catalog.Labels() {
		id, err := catalog.Resolve(label)
		if err != nil || !generator.Supports(string(id)) {
			slog.Error("no name dictionary for country", "country", label, "locale", id)
			os.Exit(1)
		}
	}
	issuer, err := usecase.NewIssueService(catalog, generator, names, cfg.IssueMaxAttempts, log)
	if err != nil {
		fatal("failed to create issue service", err)
	}
	conversation, err := usecase.NewConversationService(catalog, issuer, sessions, log)
	if err != nil {
		fatal("failed to create conversation service", err)
	}

	// ---- Telegram ----
	tg := mustTelegram(cfg, awsCfg, log)
	bot, err := handler.NewBot(conversation, tg, log, handler.WithUpdateTimeout(cfg.Telegram.UpdateTimeout))
	if err != nil {
		fatal("failed to create bot", err)
	}

	if cfg.BotMode == config.ModeLambda {
		h, err := handler.NewHandler(bot, cfg.Telegram.WebhookSecret, log)
		if err != nil {
			fatal("failed to create handler", err)
		}
		lambda.StartWithOptions(h.Handle, lambda.WithContext(ctx))
		return
	}

	updates, err := tg.Updates(ctx)
	if err != nil {
		fatal("failed to start polling", err)
	}
	log.Info("polling for updates", "session_store", cfg.SessionStore)
	bot.Serve(ctx, updates)
	log.Info("stopped polling")
}

func mustNameStore(ctx context.Context, cfg config.Config, awsCfg func() (aws.Config, error), log *slog.Logger) (nameStore, func()) {
	if cfg.NameStore == config.StoreDynamoDB {
		ac, err := awsCfg()
		if err != nil {
			fatal("failed to load AWS config", err)
		}
		store, err := repository.New(awsdynamodb.NewFromConfig(ac), cfg.NamesTable)
		if err != nil {
			fatal("failed to create dynamodb name store", err)
		}
		return store, func() {}
	}

	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		fatal("failed to connect to postgres", err)
	}
	if cfg.Postgres.AutoMigrate {
		if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
			pool.Close()
			fatal("failed to run migrations", err)
		}
	}
	store, err := repository.NewPostgres(pool)
	if err != nil {
		pool.Close()
		fatal("failed to create postgres name store", err)
	}
	return store, pool.Close
}

func mustSessionStore(ctx context.Context, cfg config.Config, awsCfg func() (aws.Config, error)) (usecase.SessionStore, func()) {
	switch cfg.SessionStore {
	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fatal("failed to parse REDIS_URL", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			fatal("failed to reach redis", err)
		}
		store, err := session.NewRedis(client, cfg.SessionTTL)
		if err != nil {
			fatal("failed to create redis session store", err)
		}
		return store, func() { _ = client.Close() }
	case config.StoreDynamoDB:
		ac, err := awsCfg()
		if err != nil {
			fatal("failed to load AWS config", err)
		}
		store, err := session.NewDynamoDB(awsdynamodb.NewFromConfig(ac), cfg.SessionsTable, cfg.SessionTTL)
		if err != nil {
			fatal("failed to create dynamodb session store", err)
		}
		return store, func() {}
	default:
		return session.NewMemory(), func() {}
	}
}

func mustTelegram(cfg config.Config, awsCfg func() (aws.Config, error), log *slog.Logger) *telegram.Client {
	opts := []telegram.Option{
		telegram.WithPollTimeout(cfg.Telegram.PollTimeout),
		telegram.WithDebug(cfg.Telegram.Debug),
		telegram.WithLogger(log),
	}

	var getter paramstore.Getter
	if cfg.Telegram.Token != "" {
		opts = append(opts, telegram.WithToken(cfg.Telegram.Token))
	} else {
		ac, err := awsCfg()
		if err != nil {
			fatal("failed to load AWS config", err)
		}
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(ac))
		if err != nil {
			fatal("failed to create SSM client", err)
		}
		getter = ssmClient
	}

	client, err := telegram.NewClient(getter, cfg.Telegram.TokenParam, opts...)
	if err != nil {
		fatal("failed to create Telegram client", err)
	}
	return client
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
