package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobsim-assessment-service/internal/ai"
	"jobsim-assessment-service/internal/app"
	"jobsim-assessment-service/internal/catalog"
	"jobsim-assessment-service/internal/config"
	"jobsim-assessment-service/internal/cooldown"
	"jobsim-assessment-service/internal/infra/memory"
	pgloader "jobsim-assessment-service/internal/infra/postgres"
	infraredis "jobsim-assessment-service/internal/infra/redis"
	"jobsim-assessment-service/internal/kv"
	"jobsim-assessment-service/internal/logger"
	"jobsim-assessment-service/internal/policy"
	transport "jobsim-assessment-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the assessment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader catalog.Loader = catalog.NewStaticLoader()
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}
	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	repo := catalog.NewRepository(loader, catalogTTL)

	var store kv.Store
	var registry app.AttemptRegistry
	if redisClient != nil {
		store = infraredis.NewKVStore(redisClient, "assessment:", redisTTL)
		registry = infraredis.NewAttemptRegistry(redisClient, redisTTL)
	} else {
		store = memory.NewKVStore()
		registry = memory.NewAttemptRegistry()
	}

	ledger := cooldown.NewLedger(store, log)

	var oracle app.QuestionOracle
	if cfg.AI.Enabled {
		generator, err := ai.NewGeminiGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			// The AI path is optional; misconfiguration degrades to the catalog.
			log.Warn("ai oracle disabled", zap.Error(err))
		} else {
			oracle = ai.NewOracle(generator, log, 0)
		}
	}

	service := app.NewAssessmentService(registry, repo, store, ledger, log, app.Options{
		QuestionCount:   cfg.QuestionCount(5),
		AttemptDuration: config.TTLDuration(cfg.Assessment.AttemptDuration, 600*time.Second),
		RetryCooldown:   policy.RetryCooldown(config.TTLDuration(cfg.Assessment.RetryCooldown, 0)),
		TopicCooldown:   policy.TopicCooldown(config.TTLDuration(cfg.Assessment.TopicCooldown, 0)),
		Oracle:          oracle,
	})

	janitorCtx, cancelJanitor := context.WithCancel(ctx)
	defer cancelJanitor()
	go app.NewJanitor(service, 15*time.Second, log).Run(janitorCtx)

	wsHandler := transport.NewWSHandler(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting assessment service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
