package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Artexxx/HR-Console/internal/api"
	"github.com/Artexxx/HR-Console/internal/config"
	"github.com/Artexxx/HR-Console/internal/exchange/producer"
	"github.com/Artexxx/HR-Console/internal/refdata"
	"github.com/Artexxx/HR-Console/internal/repository/employee"
	historyrepo "github.com/Artexxx/HR-Console/internal/repository/history"
	refdatarepo "github.com/Artexxx/HR-Console/internal/repository/refdata"
	"github.com/Artexxx/HR-Console/internal/session"
	"github.com/Artexxx/HR-Console/internal/staging"
	"github.com/Artexxx/HR-Console/library/pg"
	"github.com/Artexxx/HR-Console/library/yamlreader"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := MustNewConfig(parseFlags())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Info().Msgf("pg=%+v", cfg.Postgres.Conn.Value)

	if err := pg.Migrate(cfg.Postgres.Conn.Value, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	pgClient, err := pg.NewPG(rootCtx, cfg.Postgres.Conn.Value, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres init failed")
	}
	defer pgClient.Close()

	employeeRepo := employee.NewRepository(pgClient.Pool())
	historyRepo := historyrepo.NewRepository(pgClient.Pool())
	refdataRepo := refdatarepo.NewRepository(pgClient.Pool())

	refCache := refdata.NewCache(refdataRepo)
	if err := refCache.Load(rootCtx); err != nil {
		// Консоль стартует и без справочников: /refdata повторит загрузку.
		log.Warn().Err(err).Msg("справочники не загрузились при старте")
	}

	hrProducer := initHRProducer(cfg.Kafka)
	defer func() { _ = hrProducer.Close() }()

	committer := staging.NewCommitter(
		employeeRepo,
		historyRepo,
		staging.NewLogNotifier(log.Logger),
		log.Logger,
	)

	sessions := session.NewProvider(
		cfg.Supabase.URL.Value,
		cfg.Supabase.Key.Value,
		pgClient.Pool(),
		log.Logger,
	)

	deps := api.ServiceDeps{
		Port:         cfg.UserAPI.Port.Value,
		EmployeeRepo: employeeRepo,
		RefDataRepo:  refdataRepo,
		HistoryRepo:  historyRepo,
		Committer:    committer,
		RefCache:     refCache,
		Sessions:     sessions,
	}
	if hrProducer != nil {
		deps.Producer = hrProducer
	}

	apiService := api.NewService(deps)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("запуск HTTP API")
		if err := apiService.Start(gctx); err != nil {

			log.Error().Err(err).Msg("HTTP API завершился с ошибкой")

			return err
		}

		log.Info().Msg("HTTP API остановлен")

		return nil
	})

	// упрощённая остановка (без таймаута)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = group.Wait()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("signal received, graceful shutdown...")
		<-done
		log.Info().Msg("all services stopped")
	case <-done:
		log.Info().Msg("all services stopped")
	}
}

// initHRProducer поднимает идемпотентный sync-продюсер. Пустой bootstrap —
// консоль работает без публикации событий.
func initHRProducer(kafkaConfig config.KafkaConfig) *producer.HRProducer {
	if kafkaConfig.Bootstrap == nil || kafkaConfig.Bootstrap.Value == "" {
		log.Info().Msg("kafka не настроена, события не публикуются")
		return nil
	}

	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.ClientID = kafkaConfig.ProducerClientID.Value
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer([]string{kafkaConfig.Bootstrap.Value}, sCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("kafka producer init failed")
		return nil
	}

	return producer.NewHRProducer(
		sp,
		producer.Config{
			TopicEmployees: kafkaConfig.Topics.Employees.Value,
			TopicHistory:   kafkaConfig.Topics.History.Value,
			Source:         "hr-console-api",
		},
		log.Logger,
	)
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)

	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("ошибка чтения конфигурации приложения")
		return nil
	}

	return cfg
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	godotenv.Load(".env")

	if configPath == "" {
		configPath = "config/application-local.yaml"
	}
	return configPath
}
